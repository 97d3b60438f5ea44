package domain

import (
	"errors"
	"net/http"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// NotFoundMessage mensaje público para mutaciones sobre ids inexistentes.
const NotFoundMessage = "the record with this id does not exist"

// DomainError violación de una regla de negocio o mutación sobre un registro inexistente.
// StatusCode es el código HTTP que la capa de transporte debe devolver.
type DomainError struct {
	Field      string
	Message    string
	StatusCode int
}

// NewDomainError crea un error de dominio con status 400.
func NewDomainError(field, message string) *DomainError {
	return &DomainError{Field: field, Message: message, StatusCode: http.StatusBadRequest}
}

// NewNotFoundError crea el error de "no existe" (404) para el campo indicado.
func NewNotFoundError(field string) *DomainError {
	return &DomainError{Field: field, Message: NotFoundMessage, StatusCode: http.StatusNotFound}
}

func (e *DomainError) Error() string {
	return e.Field + ": " + e.Message
}

// Is permite errors.Is(err, ErrNotFound) sobre errores 404.
func (e *DomainError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// FieldError problema de validación de un campo concreto.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa todos los campos inválidos de una petición.
type ValidationError struct {
	Issues []FieldError
}

// Add registra un campo inválido.
func (e *ValidationError) Add(field, message string) {
	e.Issues = append(e.Issues, FieldError{Field: field, Message: message})
}

// HasIssues indica si hay al menos un campo inválido.
func (e *ValidationError) HasIssues() bool {
	return e != nil && len(e.Issues) > 0
}

// Fields devuelve los nombres de campo con problemas, en orden.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		out = append(out, i.Field)
	}
	return out
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		parts = append(parts, i.Field+": "+i.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
