package workconfig

import (
	"github.com/shopspring/decimal"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// Actor identifica quem executa a operação (vem do middleware de auth).
type Actor struct {
	UserID string
	TeamID string
}

// LawyerInput referencia um advogado por ID (a resolver no cadastro) ou
// por valor pré-resolvido. Entrada etiquetada: Ref tem precedência; na
// ausência dele, LawyerID é resolvido uma única vez na borda do serviço.
type LawyerInput struct {
	LawyerID string
	Ref      *entity.LawyerRef
	Role     string // opcional; sobrepõe o role do Ref quando informado
}

// OfficeInput referencia um escritório por ID, com a lista (possivelmente
// vazia) de advogados que atuam por ele no work.
type OfficeInput struct {
	OfficeID string
	Lawyers  []LawyerInput
}

// CreateInput carga completa para a versão inicial (e para o BulkReplace).
type CreateInput struct {
	Offices            []OfficeInput
	IndependentLawyers []LawyerInput
	LeadLawyerID       string
	FeeDistribution    map[string]decimal.Decimal
	Notes              string
}

// UpdateInput patch parcial: campo nil = manter o valor vigente; campo
// presente = substituição integral do campo correspondente.
type UpdateInput struct {
	Offices            *[]OfficeInput
	IndependentLawyers *[]LawyerInput
	Roles              *entity.ConfigurationRoles
	FeeDistribution    *map[string]decimal.Decimal
	Notes              string
}

// IsEmpty indica se o patch não altera campo algum.
func (in UpdateInput) IsEmpty() bool {
	return in.Offices == nil && in.IndependentLawyers == nil &&
		in.Roles == nil && in.FeeDistribution == nil
}
