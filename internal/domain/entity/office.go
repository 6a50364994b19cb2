package entity

import "time"

// Office representa um escritório de advocacia cadastrado no team,
// passível de ser alocado em works com seus próprios advogados.
type Office struct {
	ID        string
	TeamID    string
	Name      string
	CNPJ      string
	OAB       string // registro da sociedade na OAB
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
