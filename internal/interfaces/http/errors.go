package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workexperience-api/internal/application/dto"
	"github.com/jhoicas/workexperience-api/internal/domain"
	"github.com/jhoicas/workexperience-api/pkg/logger"
)

// errInvalidBody cuerpo que no es un objeto JSON.
var errInvalidBody = domain.NewDomainError("body", "invalid request body")

// parseBody decodifica el cuerpo JSON como mapa crudo para el pipeline de validación.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return nil, errInvalidBody
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// respondError traduce errores a respuestas HTTP:
//   - ValidationError → 400 {errors:[{field,message}]}
//   - DomainError     → su status con {field,message}
//   - cualquier otro  → 500 genérico; el detalle solo va al log.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationErrorResponse(verr))
	}
	var derr *domain.DomainError
	if errors.As(err, &derr) {
		return c.Status(derr.StatusCode).JSON(dto.ErrorResponse{Field: derr.Field, Message: derr.Message})
	}
	log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno procesando la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ServerErrorResponse{Error: "Internal Server Error"})
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, panics recuperados, etc.).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ServerErrorResponse{Error: fe.Message})
		}
		return respondError(c, log, err)
	}
}
