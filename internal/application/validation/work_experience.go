// Package validation normaliza la entrada cruda de las peticiones HTTP y la
// convierte en payloads tipados, o en un domain.ValidationError con todos los
// campos inválidos (no se corta en el primer fallo).
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/workexperience-api/internal/domain"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
)

// Límites de longitud (en runas).
const (
	MaxShortTextLength   = 100
	MaxDescriptionLength = 1000
)

const datePattern = `^\d{4}-\d{2}-\d{2}$`

// Mensajes expuestos al cliente.
const (
	MsgRequired    = "Required"
	MsgDateFormat  = "Date must be in YYYY-MM-DD format."
	MsgInvalidDate = "Invalid date"
	MsgTooShort    = "String must contain at least 1 character(s)"
)

// ParseWorkExperience valida y normaliza el cuerpo de creación/actualización.
//
//   - companyName, jobTitle, workCityLocation: string no vacío, máx. 100
//   - startDate, endDate: string YYYY-MM-DD que sea una fecha real
//   - description: string no vacío, máx. 1000
//
// Un "id" en el cuerpo se ignora: el identificador llega por la ruta.
func ParseWorkExperience(raw map[string]any) (entity.WorkExperiencePayload, error) {
	verr := &domain.ValidationError{}
	out := entity.WorkExperiencePayload{
		CompanyName:      parseText(raw, entity.FieldCompanyName, MaxShortTextLength, verr),
		JobTitle:         parseText(raw, entity.FieldJobTitle, MaxShortTextLength, verr),
		WorkCityLocation: parseText(raw, entity.FieldWorkCityLocation, MaxShortTextLength, verr),
		StartDate:        parseDate(raw, entity.FieldStartDate, verr),
		EndDate:          parseDate(raw, entity.FieldEndDate, verr),
		Description:      parseText(raw, entity.FieldDescription, MaxDescriptionLength, verr),
	}
	if verr.HasIssues() {
		return entity.WorkExperiencePayload{}, verr
	}
	return out, nil
}

func parseText(raw map[string]any, field string, max int, verr *domain.ValidationError) string {
	s, ok := requireString(raw, field, verr)
	if !ok {
		return ""
	}
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		verr.Add(field, MsgTooShort)
		return ""
	}
	if !govalidator.StringLength(s, "1", strconv.Itoa(max)) {
		verr.Add(field, fmt.Sprintf("String must contain at most %d character(s)", max))
		return ""
	}
	return s
}

func parseDate(raw map[string]any, field string, verr *domain.ValidationError) time.Time {
	s, ok := requireString(raw, field, verr)
	if !ok {
		return time.Time{}
	}
	if !govalidator.Matches(s, datePattern) {
		verr.Add(field, MsgDateFormat)
		return time.Time{}
	}
	t, err := entity.ParseDate(s)
	if err != nil {
		verr.Add(field, MsgInvalidDate)
		return time.Time{}
	}
	return t
}

func requireString(raw map[string]any, field string, verr *domain.ValidationError) (string, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		verr.Add(field, MsgRequired)
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		verr.Add(field, "Expected string, received "+typeName(v))
		return "", false
	}
	return s, true
}

// typeName nombre JSON del valor decodificado.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
