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

	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
	"github.com/jhoicas/gestion-clientes/internal/domain/repository"
	"github.com/jhoicas/gestion-clientes/internal/infrastructure/gormstore"
	"github.com/jhoicas/gestion-clientes/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-clientes/internal/interfaces/http"
	"github.com/jhoicas/gestion-clientes/pkg/config"
	"github.com/jhoicas/gestion-clientes/pkg/logger"
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
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Un contrato de persistencia, dos adaptadores intercambiables:
	// PostgreSQL (pgx) o SQLite (GORM, archivo único).
	var (
		clientRepo   repository.ClientRepository
		activityRepo repository.ActivityRepository
		catalogRepo  repository.ServiceCatalogRepository
	)
	switch cfg.DB.Driver {
	case "sqlite":
		db, err := gormstore.Open(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir SQLite")
		}
		clientRepo = gormstore.NewClientRepository(db)
		activityRepo = gormstore.NewActivityRepository(db)
		catalogRepo = gormstore.NewServiceCatalogRepository(db)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		clientRepo = postgres.NewClientRepository(pool)
		activityRepo = postgres.NewActivityRepository(pool)
		catalogRepo = postgres.NewServiceCatalogRepository(pool)
	}

	activityUC := usecase.NewActivityUseCase(activityRepo, log)
	clientUC := usecase.NewClientUseCase(clientRepo, activityUC)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, activityUC)
	statsUC := usecase.NewStatsUseCase(clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión de Clientes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:   clientUC,
		ActivityUC: activityUC,
		CatalogUC:  catalogUC,
		StatsUC:    statsUC,
		JWTSecret:  cfg.JWT.Secret,
		Expose:     !cfg.App.IsProduction(),
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
