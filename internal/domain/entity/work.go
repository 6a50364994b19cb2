package entity

import "time"

// Status de um work (processo/caso).
const (
	WorkStatusActive   = "active"
	WorkStatusArchived = "archived"
)

// Work representa um processo ou caso jurídico conduzido pela banca.
// A composição de atuação (escritórios, advogados, honorários) não vive aqui:
// é versionada em WorkConfiguration.
type Work struct {
	ID         string
	TeamID     string
	Title      string
	CaseNumber string // numeração CNJ quando judicial (ex: 0001234-56.2024.8.26.0100)
	Court      string // vara/tribunal, vazio para trabalho consultivo
	Status     string // ver constantes WorkStatus*
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
