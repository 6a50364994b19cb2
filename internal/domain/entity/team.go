package entity

import "time"

// Team representa uma banca/escritório assinante do sistema (multi-tenant).
type Team struct {
	ID        string
	Name      string
	CNPJ      string // CNPJ da banca (com ou sem formatação)
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
