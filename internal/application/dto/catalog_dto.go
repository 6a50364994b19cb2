package dto

import "time"

// CreateOfficeRequest entrada para cadastrar um escritório.
type CreateOfficeRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	CNPJ  string `json:"cnpj" validate:"omitempty,max=18"`
	OAB   string `json:"oab" validate:"omitempty,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

// OfficeResponse saída de um escritório.
type OfficeResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	OAB       string    `json:"oab"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OfficeListResponse listagem de escritórios.
type OfficeListResponse struct {
	Items []OfficeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateLawyerRequest entrada para cadastrar um advogado.
type CreateLawyerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	OAB   string `json:"oab" validate:"omitempty,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

// LawyerResponse saída de um advogado.
type LawyerResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	OAB       string    `json:"oab"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LawyerListResponse listagem de advogados.
type LawyerListResponse struct {
	Items []LawyerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
