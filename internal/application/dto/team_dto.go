package dto

import "time"

// CreateTeamRequest entrada para criar um team.
type CreateTeamRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	CNPJ  string `json:"cnpj" validate:"omitempty,max=18"`
	Email string `json:"email" validate:"omitempty,email"`
}

// TeamResponse saída de um team.
type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamListResponse listagem de teams.
type TeamListResponse struct {
	Items []TeamResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
