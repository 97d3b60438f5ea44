package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workexperience-api/internal/application/usecase"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
	"github.com/jhoicas/workexperience-api/internal/infrastructure/memory"
	"github.com/jhoicas/workexperience-api/pkg/logger"
)

const sample = `
workExperiences:
  - companyName: Acme
    jobTitle: Engineer
    workCityLocation: Remote
    startDate: "2023-01-01"
    endDate: 2023-06-01
    description: Built things
  - companyName: Globex
    jobTitle: Dev
    workCityLocation: Bogotá
    startDate: "2024-02-01"
    endDate: "2024-01-01"
    description: fechas invertidas
  - companyName: ""
    jobTitle: Dev
    workCityLocation: Remote
    startDate: "2024-01-01"
    endDate: "2024-02-01"
    description: sin empresa
`

func TestLoadSeed_FechasSinComillas(t *testing.T) {
	records, err := loadSeed(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2023-06-01", records[0]["endDate"])
}

func TestLoadSeed_YAMLInvalido(t *testing.T) {
	_, err := loadSeed(strings.NewReader("workExperiences: [\n"))
	assert.Error(t, err)
}

func TestSeed_InsertaValidosYCuentaRechazados(t *testing.T) {
	records, err := loadSeed(strings.NewReader(sample))
	require.NoError(t, err)
	repo := memory.NewWorkExperienceRepository()
	uc := usecase.NewWorkExperienceUseCase[int64](repo, nil)

	res, err := seed(context.Background(), uc, records, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, result{Inserted: 1, Rejected: 2}, res)

	list, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].CompanyName)
}

type brokenRepo struct{ *memory.WorkExperienceRepo }

func (brokenRepo) Insert(context.Context, entity.WorkExperienceDbPayload) (int64, error) {
	return 0, errors.New("disco lleno")
}

func TestSeed_ErrorDeAlmacenamientoCorta(t *testing.T) {
	records, err := loadSeed(strings.NewReader(sample))
	require.NoError(t, err)
	uc := usecase.NewWorkExperienceUseCase[int64](brokenRepo{memory.NewWorkExperienceRepository()}, nil)

	res, err := seed(context.Background(), uc, records, logger.Nop())
	assert.ErrorContains(t, err, "disco lleno")
	assert.Zero(t, res.Inserted)
}
