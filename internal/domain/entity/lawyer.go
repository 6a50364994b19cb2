package entity

import "time"

// Lawyer representa um advogado cadastrado no team. Pode atuar em works
// vinculado a um escritório ou como independente.
type Lawyer struct {
	ID        string
	TeamID    string
	Name      string
	OAB       string // inscrição individual na OAB (ex: "SP 123456")
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
