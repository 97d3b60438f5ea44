package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/workexperience-api/docs"
	"github.com/jhoicas/workexperience-api/internal/application/usecase"
	"github.com/jhoicas/workexperience-api/internal/application/validation"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/workexperience-api/internal/infrastructure/pdf"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/workexperience-api/internal/interfaces/http"
	"github.com/jhoicas/workexperience-api/pkg/config"
	"github.com/jhoicas/workexperience-api/pkg/logger"
)

// @title        Work Experience API
// @version      1.0
// @description  CRUD de experiencias laborales sobre SQLite, PostgreSQL o MongoDB.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	app, api := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		APIPrefix:      cfg.HTTP.APIPrefix,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Logger:         log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerEnabled {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	backend, err := storage.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("conexión al almacenamiento")
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	// Ids enteros (SQL, memoria) u ObjectID hex (Mongo).
	if backend.IntRepo != nil {
		mountWorkExperience[int64](api, backend.IntRepo, validation.IntIDParser{}, pdfGenerator, log)
	} else {
		mountWorkExperience[string](api, backend.StringRepo, validation.StringIDParser{}, pdfGenerator, log)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func mountWorkExperience[ID comparable](
	api fiber.Router,
	repo repository.WorkExperienceRepository[ID],
	ids validation.IDParser[ID],
	pdf usecase.WorkExperiencePDFGenerator,
	log *logger.Logger,
) {
	uc := usecase.NewWorkExperienceUseCase(repo, pdf)
	h := httpRouter.NewWorkExperienceHandler(uc, ids, log.Component("work-experience"))
	httpRouter.RegisterWorkExperienceRoutes(api, h)
}
