package workconfig_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/workconfig"
)

func baseDocument() entity.ConfigurationDocument {
	return entity.ConfigurationDocument{
		Offices: []entity.OfficeEntry{
			{OfficeID: "office-1", OfficeName: "Silva & Prado", Lawyers: []entity.LawyerRef{
				{LawyerID: "lawyer-1", Name: "João Silva", OAB: "SP 111111"},
			}},
		},
		IndependentLawyers: []entity.LawyerRef{
			{LawyerID: "lawyer-9", Name: "Ana Prado", OAB: "RJ 222222"},
		},
		Roles: entity.ConfigurationRoles{LeadLawyerID: "lawyer-1"},
		FeeDistribution: map[string]decimal.Decimal{
			"office-1": pct("80"),
			"lawyer-9": pct("20"),
		},
	}
}

func TestBuildOfficeEntry_ProjetaCadastro(t *testing.T) {
	office := &entity.Office{ID: "office-3", Name: "Costa Advogados", CNPJ: "12.345.678/0001-90", OAB: "SP 4321"}
	lawyers := []entity.LawyerRef{{LawyerID: "lawyer-2", Name: "Rita Costa"}}

	entry := workconfig.BuildOfficeEntry(office, lawyers)

	assert.Equal(t, "office-3", entry.OfficeID)
	assert.Equal(t, "Costa Advogados", entry.OfficeName)
	assert.Equal(t, "12.345.678/0001-90", entry.CNPJ)
	require.Len(t, entry.Lawyers, 1)
	assert.Equal(t, "lawyer-2", entry.Lawyers[0].LawyerID)

	// A lista de advogados é copiada, nunca compartilhada.
	lawyers[0].Name = "mutado"
	assert.Equal(t, "Rita Costa", entry.Lawyers[0].Name)
}

func TestBuildOfficeEntry_SemAdvogadosViraListaVazia(t *testing.T) {
	entry := workconfig.BuildOfficeEntry(&entity.Office{ID: "office-3"}, nil)
	require.NotNil(t, entry.Lawyers)
	assert.Empty(t, entry.Lawyers)
}

func TestMergePatch_PatchVazioPreservaTudo(t *testing.T) {
	base := baseDocument()
	out := workconfig.MergePatch(base, workconfig.DocumentPatch{})
	assert.Equal(t, base, out)
}

func TestMergePatch_SubstituiApenasCampoPresente(t *testing.T) {
	base := baseDocument()
	roles := entity.ConfigurationRoles{LeadLawyerID: "lawyer-9"}

	out := workconfig.MergePatch(base, workconfig.DocumentPatch{Roles: &roles})

	assert.Equal(t, "lawyer-9", out.Roles.LeadLawyerID)
	assert.Equal(t, base.Offices, out.Offices, "escritórios não mudam")
	assert.Equal(t, base.IndependentLawyers, out.IndependentLawyers)
	assert.Equal(t, base.FeeDistribution, out.FeeDistribution)
}

// Campo presente substitui o array inteiro, não faz merge elemento a
// elemento.
func TestMergePatch_ArrayPresenteSubstituiIntegralmente(t *testing.T) {
	base := baseDocument()
	offices := []entity.OfficeEntry{{OfficeID: "office-5"}}

	out := workconfig.MergePatch(base, workconfig.DocumentPatch{Offices: &offices})

	require.Len(t, out.Offices, 1)
	assert.Equal(t, "office-5", out.Offices[0].OfficeID)
}

func TestMergePatch_NaoMutaABase(t *testing.T) {
	base := baseDocument()
	dist := map[string]decimal.Decimal{"lawyer-9": pct("100")}

	out := workconfig.MergePatch(base, workconfig.DocumentPatch{FeeDistribution: &dist})

	// Mutações no resultado não vazam para a base nem para o patch.
	out.Offices[0].Lawyers[0].Name = "mutado"
	out.FeeDistribution["lawyer-9"] = pct("1")

	assert.Equal(t, "João Silva", base.Offices[0].Lawyers[0].Name)
	assert.True(t, base.FeeDistribution["office-1"].Equal(pct("80")))
	assert.True(t, dist["lawyer-9"].Equal(pct("100")))
}

func TestHasOffice(t *testing.T) {
	base := baseDocument()
	assert.True(t, workconfig.HasOffice(base, "office-1"))
	assert.False(t, workconfig.HasOffice(base, "office-2"))
}

func TestHasIndependentLawyer(t *testing.T) {
	base := baseDocument()
	assert.True(t, workconfig.HasIndependentLawyer(base, "lawyer-9"))
	assert.False(t, workconfig.HasIndependentLawyer(base, "lawyer-1"))
}

func TestOfficesWithWithout_PreservamOrdemENaoMutam(t *testing.T) {
	base := baseDocument()

	with := workconfig.OfficesWith(base, entity.OfficeEntry{OfficeID: "office-2"})
	require.Len(t, with, 2)
	assert.Equal(t, "office-1", with[0].OfficeID)
	assert.Equal(t, "office-2", with[1].OfficeID)

	without := workconfig.OfficesWithout(base, "office-1")
	assert.Empty(t, without)

	require.Len(t, base.Offices, 1, "a base permanece intacta")
}

func TestIndependentWithWithout(t *testing.T) {
	base := baseDocument()

	with := workconfig.IndependentWith(base, entity.LawyerRef{LawyerID: "lawyer-2"})
	require.Len(t, with, 2)

	without := workconfig.IndependentWithout(base, "lawyer-9")
	assert.Empty(t, without)
	assert.Len(t, base.IndependentLawyers, 1)
}

func TestDocumentPatch_IsEmpty(t *testing.T) {
	assert.True(t, workconfig.DocumentPatch{}.IsEmpty())

	roles := entity.ConfigurationRoles{}
	assert.False(t, workconfig.DocumentPatch{Roles: &roles}.IsEmpty())
}
