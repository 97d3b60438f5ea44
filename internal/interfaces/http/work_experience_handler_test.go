package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workexperience-api/internal/application/usecase"
	"github.com/jhoicas/workexperience-api/internal/application/validation"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/domain/repository"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/workexperience-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/workexperience-api/internal/interfaces/http"
	"github.com/jhoicas/workexperience-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const basePath = "/api/work-experience"

var acme = map[string]any{
	"companyName":      "Acme",
	"jobTitle":         "Engineer",
	"workCityLocation": "Remote",
	"startDate":        "2023-01-01",
	"endDate":          "2023-06-01",
	"description":      "Built things",
}

type errorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationBody struct {
	Errors []errorBody `json:"errors"`
}

type experienceBody struct {
	ID               int64  `json:"id"`
	CompanyName      string `json:"companyName"`
	JobTitle         string `json:"jobTitle"`
	WorkCityLocation string `json:"workCityLocation"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Description      string `json:"description"`
}

// buildTestApp monta la API completa sobre el repositorio indicado.
func buildTestApp(repo repository.WorkExperienceRepository[int64]) *fiber.App {
	app, api := apphttp.NewApp(apphttp.AppConfig{Name: "test", APIPrefix: "/api", Logger: logger.Nop()})
	uc := usecase.NewWorkExperienceUseCase(repo, infrapdf.NewMarotoPDFGenerator("test"))
	apphttp.RegisterWorkExperienceRoutes(api, apphttp.NewWorkExperienceHandler[int64](uc, validation.IntIDParser{}, logger.Nop()))
	return app
}

// doJSON lanza la petición; body puede ser nil, un string crudo o cualquier valor serializable.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func with(overrides map[string]any) map[string]any {
	out := make(map[string]any, len(acme))
	for k, v := range acme {
		out[k] = v
	}
	for k, v := range overrides {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

func idPath(id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkExperience_CrearListarEliminar(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	resp := doJSON(t, app, http.MethodPost, basePath, acme)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[experienceBody](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Acme", created.CompanyName)
	assert.Equal(t, "2023-01-01", created.StartDate)
	assert.Equal(t, "2023-06-01", created.EndDate)

	resp = doJSON(t, app, http.MethodGet, basePath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]experienceBody](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	resp = doJSON(t, app, http.MethodDelete, idPath(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, idPath(created.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, "id", body.Field)
	assert.Equal(t, "the record with this id does not exist", body.Message)
}

func TestWorkExperience_ListaVaciaEsArray(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	resp := doJSON(t, app, http.MethodGet, basePath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestWorkExperience_ActualizarReemplazaCampos(t *testing.T) {
	repo := memory.NewWorkExperienceRepository()
	app := buildTestApp(repo)

	created := decode[experienceBody](t, doJSON(t, app, http.MethodPost, basePath, acme))

	// un "id" en el cuerpo se ignora
	resp := doJSON(t, app, http.MethodPut, idPath(created.ID), with(map[string]any{
		"id":          999,
		"jobTitle":    "Staff Engineer",
		"endDate":     "2024-01-31",
		"companyName": "  Acme Corp  ",
	}))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Empty(t, raw)

	list := decode[[]experienceBody](t, doJSON(t, app, http.MethodGet, basePath, nil))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Acme Corp", list[0].CompanyName)
	assert.Equal(t, "Staff Engineer", list[0].JobTitle)
	assert.Equal(t, "2024-01-31", list[0].EndDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de validación y de dominio
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkExperience_CrearInvalidoDevuelveTodosLosCampos(t *testing.T) {
	repo := memory.NewWorkExperienceRepository()
	app := buildTestApp(repo)

	resp := doJSON(t, app, http.MethodPost, basePath, with(map[string]any{
		"companyName": "",
		"jobTitle":    nil,
		"startDate":   "2024-13-01",
		"description": 42,
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[validationBody](t, resp)
	assert.Equal(t, []errorBody{
		{Field: "companyName", Message: "String must contain at least 1 character(s)"},
		{Field: "jobTitle", Message: "Required"},
		{Field: "startDate", Message: "Invalid date"},
		{Field: "description", Message: "Expected string, received number"},
	}, body.Errors)

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "no debe persistirse nada")
}

func TestWorkExperience_FechaInicioPosteriorAFin(t *testing.T) {
	repo := memory.NewWorkExperienceRepository()
	app := buildTestApp(repo)

	resp := doJSON(t, app, http.MethodPost, basePath, with(map[string]any{
		"startDate": "2024-02-01",
		"endDate":   "2024-01-01",
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, errorBody{Field: "startDate", Message: "Start date must be before end date."}, body)

	list, _ := repo.FindAll(context.Background())
	assert.Empty(t, list)
}

func TestWorkExperience_FechasIgualesPermitidas(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	resp := doJSON(t, app, http.MethodPost, basePath, with(map[string]any{
		"startDate": "2024-02-01",
		"endDate":   "2024-02-01",
	}))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestWorkExperience_CuerpoMalformado(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	for _, raw := range []string{`{`, `[]`, `"acme"`} {
		resp := doJSON(t, app, http.MethodPost, basePath, raw)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)
		body := decode[errorBody](t, resp)
		assert.Equal(t, "body", body.Field, raw)
		assert.Equal(t, "invalid request body", body.Message, raw)
	}
}

func TestWorkExperience_ActualizarInexistente(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	// el 404 tiene prioridad sobre la regla de fechas
	resp := doJSON(t, app, http.MethodPut, idPath(41), with(map[string]any{
		"startDate": "2024-02-01",
		"endDate":   "2024-01-01",
	}))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, "id", body.Field)
}

func TestWorkExperience_IDNoNumerico(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	resp := doJSON(t, app, http.MethodDelete, basePath+"/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[validationBody](t, resp)
	assert.Equal(t, []errorBody{{Field: "id", Message: "Expected integer, received string"}}, body.Errors)

	// id y cuerpo inválidos se reportan juntos
	resp = doJSON(t, app, http.MethodPut, basePath+"/abc", with(map[string]any{"endDate": "01/06/2023"}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decode[validationBody](t, resp)
	assert.Equal(t, []errorBody{
		{Field: "id", Message: "Expected integer, received string"},
		{Field: "endDate", Message: "Date must be in YYYY-MM-DD format."},
	}, body.Errors)
}

// ──────────────────────────────────────────────────────────────────────────────
// Variante DELETE con id en el cuerpo
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkExperience_EliminarPorCuerpo(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())
	created := decode[experienceBody](t, doJSON(t, app, http.MethodPost, basePath, acme))

	resp := doJSON(t, app, http.MethodDelete, basePath, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, basePath, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, basePath, map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[validationBody](t, resp)
	assert.Equal(t, []errorBody{{Field: "id", Message: "Required"}}, body.Errors)

	resp = doJSON(t, app, http.MethodDelete, basePath, map[string]any{"id": "1"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decode[validationBody](t, resp)
	assert.Equal(t, []errorBody{{Field: "id", Message: "Expected integer, received string"}}, body.Errors)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos de almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

var errStorage = errors.New("connection refused: secreto interno")

type failingRepo struct{}

func (failingRepo) FindAll(context.Context) ([]entity.WorkExperience[int64], error) {
	return nil, errStorage
}
func (failingRepo) Insert(context.Context, entity.WorkExperienceDbPayload) (int64, error) {
	return 0, errStorage
}
func (failingRepo) Update(context.Context, int64, entity.WorkExperienceDbPayload) (bool, error) {
	return false, errStorage
}
func (failingRepo) DeleteByID(context.Context, int64) (bool, error) { return false, errStorage }
func (failingRepo) Exists(context.Context, int64) (bool, error)     { return false, errStorage }

func TestWorkExperience_ErrorDeAlmacenamientoEs500Generico(t *testing.T) {
	app := buildTestApp(failingRepo{})

	cases := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, basePath, nil},
		{http.MethodPost, basePath, acme},
		{http.MethodPut, idPath(1), acme},
		{http.MethodDelete, idPath(1), nil},
		{http.MethodGet, basePath + "/export.pdf", nil},
	}
	for _, tc := range cases {
		resp := doJSON(t, app, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, tc.method+" "+tc.path)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(raw))
		assert.NotContains(t, string(raw), "secreto")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Health, PDF y rutas desconocidas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	for _, path := range []string{"/health", "/api/health"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		raw, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "OK", string(raw))
		assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "debe propagarse el request id")
	}
}

func TestWorkExperience_ExportarPDF(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())
	doJSON(t, app, http.MethodPost, basePath, acme)

	resp := doJSON(t, app, http.MethodGet, basePath+"/export.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

func TestRutaInexistente(t *testing.T) {
	app := buildTestApp(memory.NewWorkExperienceRepository())

	resp := doJSON(t, app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
