package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma versão de configuração.
const (
	ConfigStatusActive     = "active"
	ConfigStatusSuperseded = "superseded"
)

// LawyerRef é a projeção de um advogado dentro do documento de configuração.
type LawyerRef struct {
	LawyerID string `json:"lawyer_id"`
	Name     string `json:"name"`
	OAB      string `json:"oab"`
	Role     string `json:"role,omitempty"` // texto livre: "partner", "associado", etc.
}

// OfficeEntry é a projeção de um escritório alocado, com seus advogados.
type OfficeEntry struct {
	OfficeID   string      `json:"office_id"`
	OfficeName string      `json:"office_name"`
	CNPJ       string      `json:"cnpj"`
	OAB        string      `json:"oab"`
	Lawyers    []LawyerRef `json:"lawyers"`
}

// ConfigurationRoles guarda os papéis nomeados da configuração.
// Hoje apenas o advogado responsável; novos papéis entram aqui.
type ConfigurationRoles struct {
	LeadLawyerID string `json:"lead_lawyer_id,omitempty"`
}

// ConfigurationDocument é o snapshot completo de atuação em um work:
// escritórios alocados, advogados independentes, papéis e distribuição
// de honorários. Valor puro, sem comportamento; persiste como JSONB.
type ConfigurationDocument struct {
	Offices            []OfficeEntry              `json:"offices"`
	IndependentLawyers []LawyerRef                `json:"independent_lawyers"`
	Roles              ConfigurationRoles         `json:"roles"`
	FeeDistribution    map[string]decimal.Decimal `json:"fee_distribution"`
}

// Clone devolve uma cópia profunda do documento. Toda operação de escrita
// trabalha sobre cópias: versões substituídas permanecem intactas.
func (d ConfigurationDocument) Clone() ConfigurationDocument {
	out := ConfigurationDocument{Roles: d.Roles}
	if d.Offices != nil {
		out.Offices = make([]OfficeEntry, len(d.Offices))
		for i, o := range d.Offices {
			entry := o
			if o.Lawyers != nil {
				entry.Lawyers = make([]LawyerRef, len(o.Lawyers))
				copy(entry.Lawyers, o.Lawyers)
			}
			out.Offices[i] = entry
		}
	}
	if d.IndependentLawyers != nil {
		out.IndependentLawyers = make([]LawyerRef, len(d.IndependentLawyers))
		copy(out.IndependentLawyers, d.IndependentLawyers)
	}
	if d.FeeDistribution != nil {
		out.FeeDistribution = make(map[string]decimal.Decimal, len(d.FeeDistribution))
		for k, v := range d.FeeDistribution {
			out.FeeDistribution[k] = v
		}
	}
	return out
}

// WorkConfiguration é uma versão imutável da configuração de um work.
// A cadeia por work_id é append-only: nunca se apaga nem se edita uma
// versão; a vigente é a única com status active (sequence máxima).
type WorkConfiguration struct {
	ID            string
	WorkID        string
	TeamID        string
	Document      ConfigurationDocument
	Status        string // ver constantes ConfigStatus*
	Sequence      int    // monotônico por work_id; base do controle otimista
	EffectiveFrom time.Time
	CreatedBy     string
	UpdatedBy     string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive indica se esta é a versão vigente da cadeia.
func (c *WorkConfiguration) IsActive() bool {
	return c.Status == ConfigStatusActive
}
