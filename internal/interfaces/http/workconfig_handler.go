package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	appworkconfig "github.com/jurisdesk/casemgmt-api/internal/application/workconfig"
	"github.com/jurisdesk/casemgmt-api/internal/domain"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// WorkConfigHandler trata as rotas de configuração de atuação de um work
// (versão vigente, histórico e todas as mutações versionadas).
type WorkConfigHandler struct {
	svc *appworkconfig.Service
}

// NewWorkConfigHandler constrói o handler.
func NewWorkConfigHandler(svc *appworkconfig.Service) *WorkConfigHandler {
	return &WorkConfigHandler{svc: svc}
}

// actor monta o Actor a partir dos claims carregados pelo middleware.
func (h *WorkConfigHandler) actor(c *fiber.Ctx) appworkconfig.Actor {
	return appworkconfig.Actor{UserID: GetUserID(c), TeamID: GetTeamID(c)}
}

// configError traduz os erros tipados do domínio em status HTTP.
func configError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: verr.Rule, Message: verr.Message})
	case errors.Is(err, domain.ErrAlreadyConfigured):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CONFIGURED", Message: "o work já possui configuração ativa"})
	case errors.Is(err, domain.ErrVersionConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_CONFLICT", Message: "conflito de concorrência, tente novamente"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "recurso pertence a outro team"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Current godoc
// @Summary      Configuração vigente do work
// @Tags         work-configuration
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do work"
// @Success      200  {object}  dto.ConfigurationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration [get]
func (h *WorkConfigHandler) Current(c *fiber.Ctx) error {
	workID := c.Params("id")
	version, err := h.svc.Current(c.Context(), workID)
	if err != nil {
		return configError(c, err)
	}
	if version == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: "work sem configuração ativa"})
	}
	return c.JSON(toConfigurationResponse(version))
}

// History godoc
// @Summary      Histórico de versões da configuração
// @Tags         work-configuration
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do work"
// @Success      200  {object}  dto.ConfigurationHistoryResponse
// @Router       /api/works/{id}/configuration/history [get]
func (h *WorkConfigHandler) History(c *fiber.Ctx) error {
	workID := c.Params("id")
	versions, err := h.svc.History(c.Context(), workID)
	if err != nil {
		return configError(c, err)
	}
	out := dto.ConfigurationHistoryResponse{Items: make([]dto.ConfigurationResponse, 0, len(versions))}
	for _, v := range versions {
		out.Items = append(out.Items, *toConfigurationResponse(v))
	}
	return c.JSON(out)
}

// CreateInitial godoc
// @Summary      Criar a configuração inicial do work
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.CreateConfigurationRequest  true  "Configuração inicial"
// @Success      201   {object}  dto.ConfigurationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration [post]
func (h *WorkConfigHandler) CreateInitial(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.CreateConfigurationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	version, err := h.svc.CreateInitial(c.Context(), workID, h.actor(c), toCreateInput(in))
	if err != nil {
		return configError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toConfigurationResponse(version))
}

// Update godoc
// @Summary      Atualização parcial da configuração
// @Description  Campo ausente mantém o valor vigente; campo presente substitui
// @Description  o campo inteiro. Patch vazio não publica versão nova.
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.UpdateConfigurationRequest  true  "Patch parcial"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration [patch]
func (h *WorkConfigHandler) Update(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.UpdateConfigurationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	version, err := h.svc.Update(c.Context(), workID, h.actor(c), toUpdateInput(in))
	if err != nil {
		return configError(c, err)
	}
	if version == nil {
		// Patch vazio sobre work jamais configurado.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: "work sem configuração ativa"})
	}
	return c.JSON(toConfigurationResponse(version))
}

// BulkReplace godoc
// @Summary      Substituição integral da configuração
// @Description  Descarta a composição vigente e publica um documento novo.
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.CreateConfigurationRequest  true  "Configuração completa"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration [put]
func (h *WorkConfigHandler) BulkReplace(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.CreateConfigurationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	version, err := h.svc.BulkReplace(c.Context(), workID, h.actor(c), toCreateInput(in))
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toConfigurationResponse(version))
}

// AddOffice godoc
// @Summary      Alocar escritório no work
// @Description  Idempotente: escritório já presente devolve created=false.
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.AddOfficeRequest  true  "Escritório"
// @Success      200   {object}  dto.ConfigurationMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration/offices [post]
func (h *WorkConfigHandler) AddOffice(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.AddOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.OfficeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "office_id é obrigatório"})
	}
	version, created, err := h.svc.AddOffice(c.Context(), workID, h.actor(c),
		appworkconfig.OfficeInput{OfficeID: in.OfficeID, Lawyers: toLawyerInputs(in.Lawyers)})
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toMutationResponse(version, created))
}

// RemoveOffice godoc
// @Summary      Retirar escritório do work
// @Description  Idempotente: ausência é no-op, não erro.
// @Tags         work-configuration
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID do work"
// @Param        officeId  path  string  true  "ID do escritório"
// @Success      200       {object}  dto.ConfigurationMutationResponse
// @Router       /api/works/{id}/configuration/offices/{officeId} [delete]
func (h *WorkConfigHandler) RemoveOffice(c *fiber.Ctx) error {
	workID := c.Params("id")
	officeID := c.Params("officeId")
	if officeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "officeId é obrigatório"})
	}
	version, created, err := h.svc.RemoveOffice(c.Context(), workID, h.actor(c), officeID)
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toMutationResponse(version, created))
}

// AddLawyer godoc
// @Summary      Alocar advogado independente no work
// @Description  Idempotente por lawyer_id.
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.AddLawyerRequest  true  "Advogado"
// @Success      200   {object}  dto.ConfigurationMutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration/lawyers [post]
func (h *WorkConfigHandler) AddLawyer(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.AddLawyerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.LawyerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lawyer_id é obrigatório"})
	}
	version, created, err := h.svc.AddIndependentLawyer(c.Context(), workID, h.actor(c),
		appworkconfig.LawyerInput{LawyerID: in.LawyerID, Role: in.Role})
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toMutationResponse(version, created))
}

// RemoveLawyer godoc
// @Summary      Retirar advogado independente do work
// @Description  Idempotente: ausência é no-op, não erro.
// @Tags         work-configuration
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "ID do work"
// @Param        lawyerId  path  string  true  "ID do advogado"
// @Success      200       {object}  dto.ConfigurationMutationResponse
// @Router       /api/works/{id}/configuration/lawyers/{lawyerId} [delete]
func (h *WorkConfigHandler) RemoveLawyer(c *fiber.Ctx) error {
	workID := c.Params("id")
	lawyerID := c.Params("lawyerId")
	if lawyerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "lawyerId é obrigatório"})
	}
	version, created, err := h.svc.RemoveIndependentLawyer(c.Context(), workID, h.actor(c), lawyerID)
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toMutationResponse(version, created))
}

// SetLeadLawyer godoc
// @Summary      Definir o advogado responsável
// @Description  Sobrescrita pura: sempre publica uma versão nova.
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.SetLeadLawyerRequest  true  "Advogado responsável"
// @Success      200   {object}  dto.ConfigurationResponse
// @Router       /api/works/{id}/configuration/lead-lawyer [put]
func (h *WorkConfigHandler) SetLeadLawyer(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.SetLeadLawyerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.LawyerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lawyer_id é obrigatório"})
	}
	version, err := h.svc.SetLeadLawyer(c.Context(), workID, h.actor(c), in.LawyerID)
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toConfigurationResponse(version))
}

// SetFeeDistribution godoc
// @Summary      Substituir a distribuição de honorários
// @Description  A soma dos percentuais deve ser exatamente 100 (ou mapa vazio).
// @Tags         work-configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.SetFeeDistributionRequest  true  "Distribuição"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/works/{id}/configuration/fee-distribution [put]
func (h *WorkConfigHandler) SetFeeDistribution(c *fiber.Ctx) error {
	workID := c.Params("id")
	var in dto.SetFeeDistributionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	version, err := h.svc.SetFeeDistribution(c.Context(), workID, h.actor(c), in.Distribution)
	if err != nil {
		return configError(c, err)
	}
	return c.JSON(toConfigurationResponse(version))
}

// ── Mapeamento DTO ↔ aplicação ────────────────────────────────────────────────

// toLawyerInput converte o DTO em entrada etiquetada: name/oab presentes
// indicam referência pré-resolvida, que não consulta o cadastro.
func toLawyerInput(in dto.LawyerInputDTO) appworkconfig.LawyerInput {
	if in.Name != "" || in.OAB != "" {
		return appworkconfig.LawyerInput{
			LawyerID: in.LawyerID,
			Ref: &entity.LawyerRef{
				LawyerID: in.LawyerID,
				Name:     in.Name,
				OAB:      in.OAB,
				Role:     in.Role,
			},
		}
	}
	return appworkconfig.LawyerInput{LawyerID: in.LawyerID, Role: in.Role}
}

func toLawyerInputs(in []dto.LawyerInputDTO) []appworkconfig.LawyerInput {
	out := make([]appworkconfig.LawyerInput, 0, len(in))
	for _, l := range in {
		out = append(out, toLawyerInput(l))
	}
	return out
}

func toOfficeInputs(in []dto.OfficeInputDTO) []appworkconfig.OfficeInput {
	out := make([]appworkconfig.OfficeInput, 0, len(in))
	for _, o := range in {
		out = append(out, appworkconfig.OfficeInput{OfficeID: o.OfficeID, Lawyers: toLawyerInputs(o.Lawyers)})
	}
	return out
}

func toCreateInput(in dto.CreateConfigurationRequest) appworkconfig.CreateInput {
	return appworkconfig.CreateInput{
		Offices:            toOfficeInputs(in.Offices),
		IndependentLawyers: toLawyerInputs(in.IndependentLawyers),
		LeadLawyerID:       in.LeadLawyerID,
		FeeDistribution:    in.FeeDistribution,
		Notes:              in.Notes,
	}
}

func toUpdateInput(in dto.UpdateConfigurationRequest) appworkconfig.UpdateInput {
	out := appworkconfig.UpdateInput{
		FeeDistribution: in.FeeDistribution,
		Notes:           in.Notes,
	}
	if in.Offices != nil {
		offices := toOfficeInputs(*in.Offices)
		out.Offices = &offices
	}
	if in.IndependentLawyers != nil {
		lawyers := toLawyerInputs(*in.IndependentLawyers)
		out.IndependentLawyers = &lawyers
	}
	if in.Roles != nil {
		out.Roles = &entity.ConfigurationRoles{LeadLawyerID: in.Roles.LeadLawyerID}
	}
	return out
}

func toConfigurationResponse(v *entity.WorkConfiguration) *dto.ConfigurationResponse {
	return &dto.ConfigurationResponse{
		ID:            v.ID,
		WorkID:        v.WorkID,
		TeamID:        v.TeamID,
		Document:      v.Document,
		Status:        v.Status,
		Sequence:      v.Sequence,
		EffectiveFrom: v.EffectiveFrom,
		CreatedBy:     v.CreatedBy,
		UpdatedBy:     v.UpdatedBy,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toMutationResponse(v *entity.WorkConfiguration, created bool) dto.ConfigurationMutationResponse {
	out := dto.ConfigurationMutationResponse{Created: created}
	if v != nil {
		out.Configuration = toConfigurationResponse(v)
	}
	return out
}
