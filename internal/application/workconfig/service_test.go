package workconfig_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appworkconfig "github.com/jurisdesk/casemgmt-api/internal/application/workconfig"
	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/domain/repository"
	"github.com/jurisdesk/casemgmt-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: serviço sobre os stores em memória, com cadastro pré-populado
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTeamID  = "00000000-0000-0000-0000-00000000000a"
	testWorkID  = "00000000-0000-0000-0000-0000000000ff"
	testActorID = "00000000-0000-0000-0000-000000000001"

	officeA = "00000000-0000-0000-0000-0000000000a1"
	officeB = "00000000-0000-0000-0000-0000000000b1"
	lawyerX = "00000000-0000-0000-0000-0000000000c1"
	lawyerY = "00000000-0000-0000-0000-0000000000c2"
)

type fixture struct {
	svc        *appworkconfig.Service
	configRepo *memory.WorkConfigurationRepo
	actor      appworkconfig.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	workRepo := memory.NewWorkRepository()
	officeRepo := memory.NewOfficeRepository()
	lawyerRepo := memory.NewLawyerRepository()
	configRepo := memory.NewWorkConfigurationRepository()

	require.NoError(t, workRepo.Create(ctx, &entity.Work{
		ID: testWorkID, TeamID: testTeamID, Title: "Recuperação judicial Acme",
		CaseNumber: "0001234-56.2024.8.26.0100", Status: entity.WorkStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, officeRepo.Create(ctx, &entity.Office{
		ID: officeA, TeamID: testTeamID, Name: "Silva & Prado", CNPJ: "12.345.678/0001-90",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, officeRepo.Create(ctx, &entity.Office{
		ID: officeB, TeamID: testTeamID, Name: "Costa Advogados", CNPJ: "98.765.432/0001-10",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, lawyerRepo.Create(ctx, &entity.Lawyer{
		ID: lawyerX, TeamID: testTeamID, Name: "João Silva", OAB: "SP 111111",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, lawyerRepo.Create(ctx, &entity.Lawyer{
		ID: lawyerY, TeamID: testTeamID, Name: "Ana Prado", OAB: "RJ 222222",
		CreatedAt: now, UpdatedAt: now,
	}))

	return &fixture{
		svc:        appworkconfig.NewService(configRepo, workRepo, officeRepo, lawyerRepo),
		configRepo: configRepo,
		actor:      appworkconfig.Actor{UserID: testActorID, TeamID: testTeamID},
	}
}

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInitial
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInitial_PublicaPrimeiraVersao(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	version, err := f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{
		Offices:      []appworkconfig.OfficeInput{{OfficeID: officeA}},
		LeadLawyerID: lawyerX,
		Notes:        "composição de abertura",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, version.Sequence)
	assert.Equal(t, entity.ConfigStatusActive, version.Status)
	assert.Equal(t, testActorID, version.CreatedBy)
	assert.Equal(t, "composição de abertura", version.Notes)
	require.Len(t, version.Document.Offices, 1)
	assert.Equal(t, "Silva & Prado", version.Document.Offices[0].OfficeName,
		"o nome vem resolvido do cadastro")
	assert.Equal(t, lawyerX, version.Document.Roles.LeadLawyerID)
}

func TestCreateInitial_SegundaChamadaFalha(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{})
	require.NoError(t, err)

	_, err = f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{})
	assert.ErrorIs(t, err, domain.ErrAlreadyConfigured)

	history, err := f.svc.History(ctx, testWorkID)
	require.NoError(t, err)
	assert.Len(t, history, 1, "a falha não pode ter publicado versão")
}

func TestCreateInitial_WorkInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateInitial(context.Background(), "inexistente", f.actor, appworkconfig.CreateInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInitial_WorkDeOutroTeam(t *testing.T) {
	f := newFixture(t)
	outro := appworkconfig.Actor{UserID: testActorID, TeamID: "outro-team"}
	_, err := f.svc.CreateInitial(context.Background(), testWorkID, outro, appworkconfig.CreateInput{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateInitial_HonorariosInvalidosRejeitados(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateInitial(context.Background(), testWorkID, f.actor, appworkconfig.CreateInput{
		FeeDistribution: map[string]decimal.Decimal{officeA: pct("99")},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update (patch parcial)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PatchVazioNaoPublicaVersao(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{
		Offices: []appworkconfig.OfficeInput{{OfficeID: officeA}},
	})
	require.NoError(t, err)

	got, err := f.svc.Update(ctx, testWorkID, f.actor, appworkconfig.UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, first.Sequence, got.Sequence, "patch vazio devolve a vigente")

	history, _ := f.svc.History(ctx, testWorkID)
	assert.Len(t, history, 1)
}

func TestUpdate_CampoPresenteSubstituiIntegral(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{
		Offices:      []appworkconfig.OfficeInput{{OfficeID: officeA}},
		LeadLawyerID: lawyerX,
	})
	require.NoError(t, err)

	offices := []appworkconfig.OfficeInput{{OfficeID: officeB}}
	version, err := f.svc.Update(ctx, testWorkID, f.actor, appworkconfig.UpdateInput{
		Offices: &offices,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, version.Sequence)
	require.Len(t, version.Document.Offices, 1)
	assert.Equal(t, officeB, version.Document.Offices[0].OfficeID,
		"o array inteiro foi substituído")
	assert.Equal(t, lawyerX, version.Document.Roles.LeadLawyerID,
		"campo ausente no patch permanece intacto")
}

func TestUpdate_SobreWorkNuncaConfigurado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dist := map[string]decimal.Decimal{officeA: pct("100")}
	version, err := f.svc.Update(ctx, testWorkID, f.actor, appworkconfig.UpdateInput{
		FeeDistribution: &dist,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, version.Sequence, "patch sobre cadeia vazia parte do documento vazio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Membership idempotente
// ──────────────────────────────────────────────────────────────────────────────

func TestAddOffice_SegundaChamadaENoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v1, created, err := f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeA})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, v1.Sequence)

	v2, created, err := f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeA})
	require.NoError(t, err)
	assert.False(t, created, "repetição é no-op")
	assert.Equal(t, 1, v2.Sequence)
	assert.Len(t, v2.Document.Offices, 1, "sem entrada duplicada")

	history, _ := f.svc.History(ctx, testWorkID)
	assert.Len(t, history, 1)
}

func TestRemoveOffice_AusenteENoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	version, created, err := f.svc.RemoveOffice(ctx, testWorkID, f.actor, officeA)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, version, "cadeia vazia permanece vazia")
}

func TestAddRemoveOffice_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeA})
	require.NoError(t, err)
	_, _, err = f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeB})
	require.NoError(t, err)
	version, created, err := f.svc.RemoveOffice(ctx, testWorkID, f.actor, officeA)
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, version.Document.Offices, 1)
	assert.Equal(t, officeB, version.Document.Offices[0].OfficeID)
	assert.Equal(t, 3, version.Sequence, "cada mudança real publica versão")
}

func TestAddIndependentLawyer_IdempotentePorID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v1, created, err := f.svc.AddIndependentLawyer(ctx, testWorkID, f.actor, appworkconfig.LawyerInput{LawyerID: lawyerX, Role: "parecerista"})
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, v1.Document.IndependentLawyers, 1)
	assert.Equal(t, "João Silva", v1.Document.IndependentLawyers[0].Name)
	assert.Equal(t, "parecerista", v1.Document.IndependentLawyers[0].Role)

	_, created, err = f.svc.AddIndependentLawyer(ctx, testWorkID, f.actor, appworkconfig.LawyerInput{LawyerID: lawyerX})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAddIndependentLawyer_RefPreResolvidoNaoConsultaCadastro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// O ID não existe no cadastro; o Ref pré-resolvido dispensa a consulta.
	ref := &entity.LawyerRef{LawyerID: "externo-1", Name: "Carlos Externo", OAB: "MG 333333"}
	version, created, err := f.svc.AddIndependentLawyer(ctx, testWorkID, f.actor, appworkconfig.LawyerInput{Ref: ref})
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, version.Document.IndependentLawyers, 1)
	assert.Equal(t, "Carlos Externo", version.Document.IndependentLawyers[0].Name)
}

func TestRemoveIndependentLawyer_AusenteENoop(t *testing.T) {
	f := newFixture(t)
	_, created, err := f.svc.RemoveIndependentLawyer(context.Background(), testWorkID, f.actor, lawyerX)
	require.NoError(t, err)
	assert.False(t, created)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetLeadLawyer / SetFeeDistribution
// ──────────────────────────────────────────────────────────────────────────────

// Definir o mesmo responsável duas vezes publica duas versões: a operação
// é sobrescrita pura, sem checagem de igualdade.
func TestSetLeadLawyer_SempreVersiona(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v1, err := f.svc.SetLeadLawyer(ctx, testWorkID, f.actor, lawyerX)
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Sequence)

	v2, err := f.svc.SetLeadLawyer(ctx, testWorkID, f.actor, lawyerX)
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Sequence)
	assert.Equal(t, lawyerX, v2.Document.Roles.LeadLawyerID)

	history, _ := f.svc.History(ctx, testWorkID)
	assert.Len(t, history, 2)
}

func TestSetFeeDistribution_Valida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	version, err := f.svc.SetFeeDistribution(ctx, testWorkID, f.actor, map[string]decimal.Decimal{
		officeA: pct("62.5"),
		lawyerX: pct("37.5"),
	})
	require.NoError(t, err)
	assert.True(t, version.Document.FeeDistribution[officeA].Equal(pct("62.5")))
}

// A soma errada falha antes de ler a vigente: nenhuma versão é criada.
func TestSetFeeDistribution_SomaErradaFalhaCedo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetFeeDistribution(ctx, testWorkID, f.actor, map[string]decimal.Decimal{
		officeA: pct("60"),
		lawyerX: pct("30"),
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	history, _ := f.svc.History(ctx, testWorkID)
	assert.Empty(t, history)
}

func TestSetFeeDistribution_MapaVazioLimpa(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetFeeDistribution(ctx, testWorkID, f.actor, map[string]decimal.Decimal{officeA: pct("100")})
	require.NoError(t, err)

	version, err := f.svc.SetFeeDistribution(ctx, testWorkID, f.actor, map[string]decimal.Decimal{})
	require.NoError(t, err)
	assert.Empty(t, version.Document.FeeDistribution)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkReplace
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkReplace_DescartaComposicaoAnterior(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{
		Offices:      []appworkconfig.OfficeInput{{OfficeID: officeA}},
		LeadLawyerID: lawyerX,
	})
	require.NoError(t, err)

	version, err := f.svc.BulkReplace(ctx, testWorkID, f.actor, appworkconfig.CreateInput{
		IndependentLawyers: []appworkconfig.LawyerInput{{LawyerID: lawyerY}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, version.Sequence)
	assert.Empty(t, version.Document.Offices, "nada da composição anterior sobrevive")
	assert.Empty(t, version.Document.Roles.LeadLawyerID)
	require.Len(t, version.Document.IndependentLawyers, 1)

	history, _ := f.svc.History(ctx, testWorkID)
	assert.Len(t, history, 2, "a cadeia preserva o que havia antes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes da cadeia
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_VersaoSubstituidaPermaneceIntacta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateInitial(ctx, testWorkID, f.actor, appworkconfig.CreateInput{
		Offices: []appworkconfig.OfficeInput{{OfficeID: officeA}},
	})
	require.NoError(t, err)
	_, _, err = f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeB})
	require.NoError(t, err)

	history, err := f.svc.History(ctx, testWorkID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	v1, v2 := history[0], history[1]
	assert.Equal(t, entity.ConfigStatusSuperseded, v1.Status)
	assert.Equal(t, entity.ConfigStatusActive, v2.Status)
	require.Len(t, v1.Document.Offices, 1, "o documento substituído não mudou")
	assert.Len(t, v2.Document.Offices, 2)
	assert.Less(t, v1.Sequence, v2.Sequence)
}

func TestCurrent_SempreASequenceMaxima(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i, officeID := range []string{officeA, officeB} {
		_, _, err := f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeID})
		require.NoError(t, err, "add %d", i)
	}

	current, err := f.svc.Current(ctx, testWorkID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 2, current.Sequence)
	assert.True(t, current.IsActive())

	history, _ := f.svc.History(ctx, testWorkID)
	active := 0
	for _, v := range history {
		if v.IsActive() {
			active++
		}
	}
	assert.Equal(t, 1, active, "uma única versão ativa por work")
}

func TestCurrent_WorkNuncaConfigurado(t *testing.T) {
	f := newFixture(t)
	current, err := f.svc.Current(context.Background(), testWorkID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concorrência otimista
// ──────────────────────────────────────────────────────────────────────────────

// Dois atores adicionam escritórios diferentes ao mesmo tempo: o retry
// interno absorve o conflito e ambos os escritórios aparecem no final.
func TestAddOffice_ConcorrentesAmbosAplicados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, officeID := range []string{officeA, officeB} {
		wg.Add(1)
		go func(i int, officeID string) {
			defer wg.Done()
			_, _, errs[i] = f.svc.AddOffice(ctx, testWorkID, f.actor, appworkconfig.OfficeInput{OfficeID: officeID})
		}(i, officeID)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	current, err := f.svc.Current(ctx, testWorkID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 2, current.Sequence)
	assert.Len(t, current.Document.Offices, 2)
}

// conflictingRepo força ErrVersionConflict em todo Append para exercitar
// o esgotamento das tentativas.
type conflictingRepo struct {
	memory.WorkConfigurationRepo
	attempts int
}

func (r *conflictingRepo) Append(ctx context.Context, p repository.AppendConfigurationParams) (*entity.WorkConfiguration, error) {
	r.attempts++
	return nil, domain.ErrVersionConflict
}

func TestMutate_ConflitoPersistenteSobeAoChamador(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	workRepo := memory.NewWorkRepository()
	require.NoError(t, workRepo.Create(ctx, &entity.Work{
		ID: testWorkID, TeamID: testTeamID, Title: "t", Status: entity.WorkStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))
	repo := &conflictingRepo{}
	svc := appworkconfig.NewService(repo, workRepo, memory.NewOfficeRepository(), memory.NewLawyerRepository())

	_, err := svc.SetLeadLawyer(ctx, testWorkID, appworkconfig.Actor{UserID: testActorID, TeamID: testTeamID}, lawyerX)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Equal(t, 4, repo.attempts, "tentativa inicial mais três retries")
}
