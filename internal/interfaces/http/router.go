package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/workexperience-api/pkg/logger"
)

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name           string
	APIPrefix      string // ej. "/api"; vacío = sin prefijo
	AllowedOrigins string
	Logger         *logger.Logger
}

// NewApp construye la aplicación Fiber con middlewares comunes y health checks.
// Devuelve la app y el grupo de la API donde montar las rutas de dominio.
func NewApp(cfg AppConfig) (*fiber.App, fiber.Router) {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := cfg.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	app.Get("/health", health)
	api := app.Group(cfg.APIPrefix)
	if cfg.APIPrefix != "" && cfg.APIPrefix != "/" {
		api.Get("/health", health)
	}
	return app, api
}

// RegisterWorkExperienceRoutes registra las rutas de /work-experience en el grupo de la API.
func RegisterWorkExperienceRoutes[ID comparable](api fiber.Router, h *WorkExperienceHandler[ID]) {
	g := api.Group("/work-experience")
	g.Get("/", h.List)
	g.Get("/export.pdf", h.ExportPDF)
	g.Post("/", h.Create)
	g.Delete("/", h.DeleteByBody)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// health godoc
// @Summary  Health check
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string  "OK"
// @Router   /health [get]
func health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("OK")
}
