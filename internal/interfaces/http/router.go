package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jurisdesk/casemgmt-api/internal/application/auth"
	"github.com/jurisdesk/casemgmt-api/internal/application/usecase"
	appworkconfig "github.com/jurisdesk/casemgmt-api/internal/application/workconfig"
	"github.com/jurisdesk/casemgmt-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	TeamUC     *usecase.TeamUseCase
	WorkUC     *usecase.WorkUseCase
	OfficeUC   *usecase.OfficeUseCase
	LawyerUC   *usecase.LawyerUseCase
	WorkConfig *appworkconfig.Service
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Teams (público para onboarding; leitura protegível depois)
	teams := api.Group("/teams")
	teamHandler := NewTeamHandler(deps.TeamUC)
	teams.Post("/", teamHandler.Create)
	teams.Get("/", teamHandler.List)
	teams.Get("/:id", teamHandler.GetByID)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Offices (cadastro, protegido)
	offices := protected.Group("/offices")
	officeHandler := NewOfficeHandler(deps.OfficeUC)
	offices.Post("/", officeHandler.Create)
	offices.Get("/", officeHandler.List)
	offices.Get("/:id", officeHandler.GetByID)

	// Lawyers (cadastro, protegido)
	lawyers := protected.Group("/lawyers")
	lawyerHandler := NewLawyerHandler(deps.LawyerUC)
	lawyers.Post("/", lawyerHandler.Create)
	lawyers.Get("/", lawyerHandler.List)
	lawyers.Get("/:id", lawyerHandler.GetByID)

	// Works (protegido)
	works := protected.Group("/works")
	workHandler := NewWorkHandler(deps.WorkUC)
	works.Post("/", workHandler.Create)
	works.Get("/", workHandler.List)
	works.Get("/:id", workHandler.GetByID)
	works.Put("/:id", workHandler.Update)

	// Configuração de atuação (protegido; mutações exigem admin ou advogado)
	configHandler := NewWorkConfigHandler(deps.WorkConfig)
	works.Get("/:id/configuration", configHandler.Current)
	works.Get("/:id/configuration/history", configHandler.History)

	canConfigure := RequireRole(entity.RoleAdmin, entity.RoleAdvogado)
	works.Post("/:id/configuration", canConfigure, configHandler.CreateInitial)
	works.Patch("/:id/configuration", canConfigure, configHandler.Update)
	works.Put("/:id/configuration", canConfigure, configHandler.BulkReplace)
	works.Post("/:id/configuration/offices", canConfigure, configHandler.AddOffice)
	works.Delete("/:id/configuration/offices/:officeId", canConfigure, configHandler.RemoveOffice)
	works.Post("/:id/configuration/lawyers", canConfigure, configHandler.AddLawyer)
	works.Delete("/:id/configuration/lawyers/:lawyerId", canConfigure, configHandler.RemoveLawyer)
	works.Put("/:id/configuration/lead-lawyer", canConfigure, configHandler.SetLeadLawyer)
	works.Put("/:id/configuration/fee-distribution", canConfigure, configHandler.SetFeeDistribution)
}
