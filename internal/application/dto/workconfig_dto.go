package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// LawyerInputDTO referencia um advogado por ID ou traz a referência
// completa (name/oab presentes = pré-resolvida, o cadastro não é consultado).
type LawyerInputDTO struct {
	LawyerID string `json:"lawyer_id" validate:"required,uuid"`
	Name     string `json:"name,omitempty"`
	OAB      string `json:"oab,omitempty"`
	Role     string `json:"role,omitempty"`
}

// OfficeInputDTO referencia um escritório com seus advogados no work.
type OfficeInputDTO struct {
	OfficeID string           `json:"office_id" validate:"required,uuid"`
	Lawyers  []LawyerInputDTO `json:"lawyers"`
}

// RolesDTO papéis nomeados da configuração.
type RolesDTO struct {
	LeadLawyerID string `json:"lead_lawyer_id"`
}

// CreateConfigurationRequest carga completa para a versão inicial
// (e para o replace integral via PUT).
type CreateConfigurationRequest struct {
	Offices            []OfficeInputDTO           `json:"offices"`
	IndependentLawyers []LawyerInputDTO           `json:"independent_lawyers"`
	LeadLawyerID       string                     `json:"lead_lawyer_id"`
	FeeDistribution    map[string]decimal.Decimal `json:"fee_distribution"`
	Notes              string                     `json:"notes"`
}

// UpdateConfigurationRequest patch parcial: campo ausente (null) = manter;
// campo presente = substituição integral do campo.
type UpdateConfigurationRequest struct {
	Offices            *[]OfficeInputDTO           `json:"offices"`
	IndependentLawyers *[]LawyerInputDTO           `json:"independent_lawyers"`
	Roles              *RolesDTO                   `json:"roles"`
	FeeDistribution    *map[string]decimal.Decimal `json:"fee_distribution"`
	Notes              string                      `json:"notes"`
}

// AddOfficeRequest entrada para alocar um escritório.
type AddOfficeRequest struct {
	OfficeID string           `json:"office_id" validate:"required,uuid"`
	Lawyers  []LawyerInputDTO `json:"lawyers"`
}

// AddLawyerRequest entrada para alocar um advogado independente.
type AddLawyerRequest struct {
	LawyerID string `json:"lawyer_id" validate:"required,uuid"`
	Role     string `json:"role,omitempty"`
}

// SetLeadLawyerRequest entrada para definir o advogado responsável.
type SetLeadLawyerRequest struct {
	LawyerID string `json:"lawyer_id" validate:"required"`
}

// SetFeeDistributionRequest entrada para substituir a distribuição de
// honorários (chave da parte -> percentual).
type SetFeeDistributionRequest struct {
	Distribution map[string]decimal.Decimal `json:"distribution" validate:"required"`
}

// ConfigurationResponse saída de uma versão de configuração.
type ConfigurationResponse struct {
	ID            string                       `json:"id"`
	WorkID        string                       `json:"work_id"`
	TeamID        string                       `json:"team_id"`
	Document      entity.ConfigurationDocument `json:"document"`
	Status        string                       `json:"status"`
	Sequence      int                          `json:"sequence"`
	EffectiveFrom time.Time                    `json:"effective_from"`
	CreatedBy     string                       `json:"created_by"`
	UpdatedBy     string                       `json:"updated_by"`
	Notes         string                       `json:"notes,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

// ConfigurationMutationResponse saída de operações de membership:
// created=false indica no-op idempotente (nenhuma versão publicada).
type ConfigurationMutationResponse struct {
	Created       bool                   `json:"created"`
	Configuration *ConfigurationResponse `json:"configuration"`
}

// ConfigurationHistoryResponse cadeia completa, da mais antiga à mais nova.
type ConfigurationHistoryResponse struct {
	Items []ConfigurationResponse `json:"items"`
}
