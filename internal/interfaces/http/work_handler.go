package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jurisdesk/casemgmt-api/internal/application/dto"
	"github.com/jurisdesk/casemgmt-api/internal/application/usecase"
	"github.com/jurisdesk/casemgmt-api/internal/domain"
)

// WorkHandler trata as rotas de works (processos/casos), protegidas por team.
type WorkHandler struct {
	uc *usecase.WorkUseCase
}

// NewWorkHandler constrói o handler.
func NewWorkHandler(uc *usecase.WorkUseCase) *WorkHandler {
	return &WorkHandler{uc: uc}
}

// Create godoc
// @Summary      Criar work
// @Tags         works
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkRequest  true  "Dados do work"
// @Success      201   {object}  dto.WorkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/works [post]
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	teamID := GetTeamID(c)
	if teamID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "team_id obrigatório"})
	}
	var in dto.CreateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title é obrigatório"})
	}
	out, err := h.uc.Create(c.Context(), teamID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter work por ID
// @Tags         works
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do work"
// @Success      200  {object}  dto.WorkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/works/{id} [get]
func (h *WorkHandler) GetByID(c *fiber.Ctx) error {
	teamID := GetTeamID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(c.Context(), teamID, id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "work pertence a outro team"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "work não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar work
// @Tags         works
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do work"
// @Param        body  body  dto.UpdateWorkRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.WorkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/works/{id} [put]
func (h *WorkHandler) Update(c *fiber.Ctx) error {
	teamID := GetTeamID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), teamID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "work pertence a outro team"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "work não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar works do team
// @Tags         works
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.WorkListResponse
// @Router       /api/works [get]
func (h *WorkHandler) List(c *fiber.Ctx) error {
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
