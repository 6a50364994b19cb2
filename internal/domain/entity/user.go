package entity

import "time"

// Papéis de usuário dentro de um team.
const (
	RoleAdmin      = "admin"
	RoleAdvogado   = "advogado"
	RoleSecretaria = "secretaria"
)

// User representa um usuário autenticável vinculado a um team.
type User struct {
	ID           string
	TeamID       string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro após persistir
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
