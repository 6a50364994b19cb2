package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	appworkconfig "github.com/jurisdesk/casemgmt-api/internal/application/workconfig"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
	"github.com/jurisdesk/casemgmt-api/internal/infrastructure/memory"
	apphttp "github.com/jurisdesk/casemgmt-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Harness: API completa sobre os stores em memória
// ──────────────────────────────────────────────────────────────────────────────

const (
	cfgWorkID  = "00000000-0000-0000-0000-0000000000ff"
	cfgOfficeA = "00000000-0000-0000-0000-0000000000a1"
	cfgLawyerX = "00000000-0000-0000-0000-0000000000c1"
)

func buildConfigApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	workRepo := memory.NewWorkRepository()
	officeRepo := memory.NewOfficeRepository()
	lawyerRepo := memory.NewLawyerRepository()
	configRepo := memory.NewWorkConfigurationRepository()

	require.NoError(t, workRepo.Create(ctx, &entity.Work{
		ID: cfgWorkID, TeamID: testTeamID, Title: "Ação renegociação",
		Status: entity.WorkStatusActive, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, officeRepo.Create(ctx, &entity.Office{
		ID: cfgOfficeA, TeamID: testTeamID, Name: "Silva & Prado",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, lawyerRepo.Create(ctx, &entity.Lawyer{
		ID: cfgLawyerX, TeamID: testTeamID, Name: "João Silva", OAB: "SP 111111",
		CreatedAt: now, UpdatedAt: now,
	}))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WorkConfig: appworkconfig.NewService(configRepo, workRepo, officeRepo, lawyerRepo),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeConfig(t *testing.T, resp *http.Response) dto.ConfigurationResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ConfigurationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func configPath(suffix string) string {
	return fmt.Sprintf("/api/works/%s/configuration%s", cfgWorkID, suffix)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida via HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestConfigAPI_CicloCompleto(t *testing.T) {
	app := buildConfigApp(t)
	token := tokenForRole(t, "advogado")

	// Sem configuração ainda.
	resp := doJSON(t, app, http.MethodGet, configPath(""), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Versão inicial.
	resp = doJSON(t, app, http.MethodPost, configPath(""), token, dto.CreateConfigurationRequest{
		Offices:      []dto.OfficeInputDTO{{OfficeID: cfgOfficeA}},
		LeadLawyerID: cfgLawyerX,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeConfig(t, resp)
	assert.Equal(t, 1, created.Sequence)
	assert.Equal(t, entity.ConfigStatusActive, created.Status)
	require.Len(t, created.Document.Offices, 1)
	assert.Equal(t, "Silva & Prado", created.Document.Offices[0].OfficeName)

	// Segunda criação conflita.
	resp = doJSON(t, app, http.MethodPost, configPath(""), token, dto.CreateConfigurationRequest{})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	resp.Body.Close()
	assert.Equal(t, "ALREADY_CONFIGURED", errBody.Code)

	// Advogado independente entra, publicando a versão 2.
	resp = doJSON(t, app, http.MethodPost, configPath("/lawyers"), token, dto.AddLawyerRequest{LawyerID: cfgLawyerX})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mut dto.ConfigurationMutationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mut))
	resp.Body.Close()
	assert.True(t, mut.Created)
	assert.Equal(t, 2, mut.Configuration.Sequence)

	// Repetição é no-op.
	resp = doJSON(t, app, http.MethodPost, configPath("/lawyers"), token, dto.AddLawyerRequest{LawyerID: cfgLawyerX})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mut))
	resp.Body.Close()
	assert.False(t, mut.Created)
	assert.Equal(t, 2, mut.Configuration.Sequence)

	// Histórico com as duas versões, da mais antiga à mais nova.
	resp = doJSON(t, app, http.MethodGet, configPath("/history"), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist dto.ConfigurationHistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hist))
	resp.Body.Close()
	require.Len(t, hist.Items, 2)
	assert.Equal(t, entity.ConfigStatusSuperseded, hist.Items[0].Status)
	assert.Equal(t, entity.ConfigStatusActive, hist.Items[1].Status)
}

func TestConfigAPI_HonorariosInvalidosRetorna422(t *testing.T) {
	app := buildConfigApp(t)
	token := tokenForRole(t, "admin")

	resp := doJSON(t, app, http.MethodPut, configPath("/fee-distribution"), token,
		map[string]interface{}{"distribution": map[string]string{cfgOfficeA: "99"}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "fee_distribution_sum", errBody.Code)
	assert.Contains(t, errBody.Message, "99")
}

func TestConfigAPI_WorkInexistenteRetorna404(t *testing.T) {
	app := buildConfigApp(t)
	token := tokenForRole(t, "admin")

	resp := doJSON(t, app, http.MethodPut, "/api/works/nao-existe/configuration/lead-lawyer", token,
		dto.SetLeadLawyerRequest{LawyerID: cfgLawyerX})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Secretaria lê a configuração mas não muta: as rotas de escrita exigem
// admin ou advogado.
func TestConfigAPI_SecretariaSomenteLeitura(t *testing.T) {
	app := buildConfigApp(t)
	admin := tokenForRole(t, "admin")
	secretaria := tokenForRole(t, "secretaria")

	resp := doJSON(t, app, http.MethodPost, configPath(""), admin, dto.CreateConfigurationRequest{})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, configPath(""), secretaria, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, configPath("/lead-lawyer"), secretaria,
		dto.SetLeadLawyerRequest{LawyerID: cfgLawyerX})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestConfigAPI_SemTokenRetorna401(t *testing.T) {
	app := buildConfigApp(t)

	req := httptest.NewRequest(http.MethodGet, configPath(""), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
