package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/flujo-api/internal/application/auth"
	"github.com/jhoicas/flujo-api/internal/application/report"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/flujo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/flujo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/flujo-api/internal/interfaces/http"
	"github.com/jhoicas/flujo-api/pkg/config"
	"github.com/jhoicas/flujo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	statusRepo := postgres.NewStatusRepository(pool)
	typeRepo := postgres.NewTypeRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	recordUC := usecase.NewRecordUseCase(recordRepo, statusRepo, typeRepo, categoryRepo, subcategoryRepo)
	statusUC := usecase.NewStatusUseCase(statusRepo)
	typeUC := usecase.NewTypeUseCase(typeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, typeRepo)
	subcategoryUC := usecase.NewSubcategoryUseCase(subcategoryRepo, categoryRepo)
	reportUC := report.NewReportUseCase(recordRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Flujo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordUC:      recordUC,
		StatusUC:      statusUC,
		TypeUC:        typeUC,
		CategoryUC:    categoryUC,
		SubcategoryUC: subcategoryUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
