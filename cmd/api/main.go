package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jurisdesk/casemgmt-api/internal/application/auth"
	"github.com/jurisdesk/casemgmt-api/internal/application/usecase"
	appworkconfig "github.com/jurisdesk/casemgmt-api/internal/application/workconfig"
	"github.com/jurisdesk/casemgmt-api/internal/infrastructure/postgres"
	httpRouter "github.com/jurisdesk/casemgmt-api/internal/interfaces/http"
	"github.com/jurisdesk/casemgmt-api/internal/obs"
	"github.com/jurisdesk/casemgmt-api/pkg/config"
	"github.com/jurisdesk/casemgmt-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	obs.Init()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	teamRepo := postgres.NewTeamRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	workRepo := postgres.NewWorkRepository(pool)
	officeRepo := postgres.NewOfficeRepository(pool)
	lawyerRepo := postgres.NewLawyerRepository(pool)
	configRepo := postgres.NewWorkConfigurationRepository(pool)

	teamUC := usecase.NewTeamUseCase(teamRepo)
	workUC := usecase.NewWorkUseCase(workRepo)
	officeUC := usecase.NewOfficeUseCase(officeRepo)
	lawyerUC := usecase.NewLawyerUseCase(lawyerRepo)
	workConfigSvc := appworkconfig.NewService(configRepo, workRepo, officeRepo, lawyerRepo)
	authUC := auth.NewAuthUseCase(userRepo, teamRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Jurisdesk Case Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(obs.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		TeamUC:     teamUC,
		WorkUC:     workUC,
		OfficeUC:   officeUC,
		LawyerUC:   lawyerUC,
		WorkConfig: workConfigSvc,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
