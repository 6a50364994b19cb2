package dto

import "time"

// CreateWorkRequest entrada para criar um work (processo/caso).
type CreateWorkRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=300"`
	CaseNumber string `json:"case_number" validate:"omitempty,max=30"`
	Court      string `json:"court" validate:"omitempty,max=200"`
}

// UpdateWorkRequest entrada para atualização parcial de um work.
type UpdateWorkRequest struct {
	Title      *string `json:"title"`
	CaseNumber *string `json:"case_number"`
	Court      *string `json:"court"`
	Status     *string `json:"status" validate:"omitempty,oneof=active archived"`
}

// WorkResponse saída de um work.
type WorkResponse struct {
	ID         string    `json:"id"`
	TeamID     string    `json:"team_id"`
	Title      string    `json:"title"`
	CaseNumber string    `json:"case_number"`
	Court      string    `json:"court"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WorkListResponse listagem de works.
type WorkListResponse struct {
	Items []WorkResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
