package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/workexperience-api/internal/domain"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
)

// IDParser valida el identificador según el esquema del backend.
type IDParser[ID comparable] interface {
	// FromPath interpreta el segmento :id de la ruta.
	FromPath(raw string) (ID, error)
	// FromBody exige un campo "id" presente y del tipo correcto en el cuerpo.
	FromBody(raw map[string]any) (ID, error)
}

var (
	_ IDParser[int64]  = IntIDParser{}
	_ IDParser[string] = StringIDParser{}
)

// IntIDParser ids enteros autoincrementales (SQLite, PostgreSQL, memoria).
type IntIDParser struct{}

// FromPath acepta solo enteros en base 10.
func (IntIDParser) FromPath(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, idError(MsgRequired)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, idError("Expected integer, received string")
	}
	return id, nil
}

// FromBody acepta números JSON sin parte decimal.
func (IntIDParser) FromBody(raw map[string]any) (int64, error) {
	v, ok := raw[entity.FieldID]
	if !ok || v == nil {
		return 0, idError(MsgRequired)
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, idError("Expected integer, received float")
		}
		return int64(n), nil
	case json.Number:
		id, err := n.Int64()
		if err != nil {
			return 0, idError("Expected integer, received float")
		}
		return id, nil
	default:
		return 0, idError("Expected integer, received " + typeName(v))
	}
}

// StringIDParser ids opacos de documento (ObjectID hex en Mongo). Cualquier
// string presente es válido; si no existe en el almacén se resuelve como 404.
type StringIDParser struct{}

// FromPath exige un segmento no vacío.
func (StringIDParser) FromPath(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", idError(MsgRequired)
	}
	return raw, nil
}

// FromBody exige un "id" string no vacío.
func (StringIDParser) FromBody(raw map[string]any) (string, error) {
	v, ok := raw[entity.FieldID]
	if !ok || v == nil {
		return "", idError(MsgRequired)
	}
	s, ok := v.(string)
	if !ok {
		return "", idError("Expected string, received " + typeName(v))
	}
	if strings.TrimSpace(s) == "" {
		return "", idError(MsgTooShort)
	}
	return strings.TrimSpace(s), nil
}

func idError(message string) error {
	verr := &domain.ValidationError{}
	verr.Add(entity.FieldID, message)
	return verr
}
