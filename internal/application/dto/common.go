package dto

import "github.com/jhoicas/workexperience-api/internal/domain"

// ErrorResponse cuerpo de error con una sola causa (errores de dominio).
type ErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error con todos los campos inválidos.
type ValidationErrorResponse struct {
	Errors []ErrorResponse `json:"errors"`
}

// ServerErrorResponse cuerpo genérico de error 500 (sin detalle interno).
type ServerErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
}

// NewValidationErrorResponse mapea un domain.ValidationError.
func NewValidationErrorResponse(verr *domain.ValidationError) ValidationErrorResponse {
	out := ValidationErrorResponse{Errors: make([]ErrorResponse, 0, len(verr.Issues))}
	for _, i := range verr.Issues {
		out.Errors = append(out.Errors, ErrorResponse{Field: i.Field, Message: i.Message})
	}
	return out
}
