// Package workconfig concentra a lógica pura do versionamento de
// configuração de works: construção de documentos, merge de patches e
// validação de invariantes. Nenhuma função deste pacote toca persistência
// nem muta os valores recebidos.
package workconfig

import (
	"github.com/shopspring/decimal"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// BuildLawyerEntry projeta um advogado cadastrado na forma armazenada
// no documento. Role é texto livre opcional.
func BuildLawyerEntry(lawyer *entity.Lawyer, role string) entity.LawyerRef {
	return entity.LawyerRef{
		LawyerID: lawyer.ID,
		Name:     lawyer.Name,
		OAB:      lawyer.OAB,
		Role:     role,
	}
}

// BuildOfficeEntry projeta um escritório cadastrado mais seus advogados
// (já resolvidos) na forma armazenada no documento.
func BuildOfficeEntry(office *entity.Office, lawyers []entity.LawyerRef) entity.OfficeEntry {
	entry := entity.OfficeEntry{
		OfficeID:   office.ID,
		OfficeName: office.Name,
		CNPJ:       office.CNPJ,
		OAB:        office.OAB,
		Lawyers:    []entity.LawyerRef{},
	}
	if len(lawyers) > 0 {
		entry.Lawyers = make([]entity.LawyerRef, len(lawyers))
		copy(entry.Lawyers, lawyers)
	}
	return entry
}

// DocumentPatch é um patch parcial sobre ConfigurationDocument.
// Campo nil = manter o valor da base; campo presente = substituição
// integral (as operações derivam o array completo antes do merge).
type DocumentPatch struct {
	Offices            *[]entity.OfficeEntry
	IndependentLawyers *[]entity.LawyerRef
	Roles              *entity.ConfigurationRoles
	FeeDistribution    *map[string]decimal.Decimal
}

// IsEmpty indica se o patch não altera campo algum.
func (p DocumentPatch) IsEmpty() bool {
	return p.Offices == nil && p.IndependentLawyers == nil &&
		p.Roles == nil && p.FeeDistribution == nil
}

// MergePatch aplica o patch sobre uma cópia da base e devolve o novo
// documento. A base nunca é mutada (invariante de imutabilidade do
// histórico).
func MergePatch(base entity.ConfigurationDocument, patch DocumentPatch) entity.ConfigurationDocument {
	doc := base.Clone()
	if patch.Offices != nil {
		doc.Offices = cloneOffices(*patch.Offices)
	}
	if patch.IndependentLawyers != nil {
		doc.IndependentLawyers = cloneLawyers(*patch.IndependentLawyers)
	}
	if patch.Roles != nil {
		doc.Roles = *patch.Roles
	}
	if patch.FeeDistribution != nil {
		doc.FeeDistribution = cloneDistribution(*patch.FeeDistribution)
	}
	return doc
}

// HasOffice indica se o documento já contém o escritório.
func HasOffice(doc entity.ConfigurationDocument, officeID string) bool {
	for _, o := range doc.Offices {
		if o.OfficeID == officeID {
			return true
		}
	}
	return false
}

// HasIndependentLawyer indica se o documento já contém o advogado
// entre os independentes.
func HasIndependentLawyer(doc entity.ConfigurationDocument, lawyerID string) bool {
	for _, l := range doc.IndependentLawyers {
		if l.LawyerID == lawyerID {
			return true
		}
	}
	return false
}

// OfficesWith devolve a lista de escritórios da base mais a nova entrada,
// preservando a ordem. Não muta a base.
func OfficesWith(doc entity.ConfigurationDocument, entry entity.OfficeEntry) []entity.OfficeEntry {
	out := make([]entity.OfficeEntry, 0, len(doc.Offices)+1)
	out = append(out, cloneOffices(doc.Offices)...)
	return append(out, entry)
}

// OfficesWithout devolve a lista de escritórios da base sem o officeID.
func OfficesWithout(doc entity.ConfigurationDocument, officeID string) []entity.OfficeEntry {
	out := make([]entity.OfficeEntry, 0, len(doc.Offices))
	for _, o := range cloneOffices(doc.Offices) {
		if o.OfficeID != officeID {
			out = append(out, o)
		}
	}
	return out
}

// IndependentWith devolve os advogados independentes da base mais o novo.
func IndependentWith(doc entity.ConfigurationDocument, ref entity.LawyerRef) []entity.LawyerRef {
	out := make([]entity.LawyerRef, 0, len(doc.IndependentLawyers)+1)
	out = append(out, doc.IndependentLawyers...)
	return append(out, ref)
}

// IndependentWithout devolve os advogados independentes da base sem lawyerID.
func IndependentWithout(doc entity.ConfigurationDocument, lawyerID string) []entity.LawyerRef {
	out := make([]entity.LawyerRef, 0, len(doc.IndependentLawyers))
	for _, l := range doc.IndependentLawyers {
		if l.LawyerID != lawyerID {
			out = append(out, l)
		}
	}
	return out
}

func cloneOffices(in []entity.OfficeEntry) []entity.OfficeEntry {
	out := make([]entity.OfficeEntry, len(in))
	for i, o := range in {
		entry := o
		if o.Lawyers != nil {
			entry.Lawyers = make([]entity.LawyerRef, len(o.Lawyers))
			copy(entry.Lawyers, o.Lawyers)
		}
		out[i] = entry
	}
	return out
}

func cloneLawyers(in []entity.LawyerRef) []entity.LawyerRef {
	out := make([]entity.LawyerRef, len(in))
	copy(out, in)
	return out
}

func cloneDistribution(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
