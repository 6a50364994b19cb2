package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	"github.com/jurisdesk/casemgmt-api/internal/application/usecase"
	"github.com/jurisdesk/casemgmt-api/internal/domain"
)

// LawyerHandler trata as rotas do cadastro de advogados.
type LawyerHandler struct {
	uc *usecase.LawyerUseCase
}

// NewLawyerHandler constrói o handler.
func NewLawyerHandler(uc *usecase.LawyerUseCase) *LawyerHandler {
	return &LawyerHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar advogado
// @Tags         lawyers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLawyerRequest  true  "Dados do advogado"
// @Success      201   {object}  dto.LawyerResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lawyers [post]
func (h *LawyerHandler) Create(c *fiber.Ctx) error {
	teamID := GetTeamID(c)
	if teamID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "team_id obrigatório"})
	}
	var in dto.CreateLawyerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(c.Context(), teamID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "OAB já cadastrada neste team"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter advogado por ID
// @Tags         lawyers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do advogado"
// @Success      200  {object}  dto.LawyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lawyers/{id} [get]
func (h *LawyerHandler) GetByID(c *fiber.Ctx) error {
	teamID := GetTeamID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(c.Context(), teamID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "advogado não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar advogados do team
// @Tags         lawyers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.LawyerListResponse
// @Router       /api/lawyers [get]
func (h *LawyerHandler) List(c *fiber.Ctx) error {
	teamID := GetTeamID(c)
	if teamID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "team_id obrigatório"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), teamID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
