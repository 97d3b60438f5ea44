package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
)

func TestParseDate_MedianocheUTC(t *testing.T) {
	d, err := entity.ParseDate("2023-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2023-01-31", entity.FormatDate(d))

	_, err = entity.ParseDate("2023-02-30")
	assert.Error(t, err, "30 de febrero no existe")
}

func TestDateOnly_TruncaHora(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	in := time.Date(2023, time.March, 10, 22, 30, 0, 0, bogota) // 2023-03-11 03:30 UTC

	assert.Equal(t, time.Date(2023, time.March, 11, 0, 0, 0, 0, time.UTC), entity.DateOnly(in))
}

func TestFromDbPayload_RoundTrip(t *testing.T) {
	db := entity.WorkExperienceDbPayload{
		CompanyName:      "Acme",
		JobTitle:         "Engineer",
		WorkCityLocation: "Remote",
		StartDate:        "2023-01-01",
		EndDate:          "2023-06-01",
		Description:      "Built things",
	}
	w, err := entity.FromDbPayload(int64(7), db)
	require.NoError(t, err)

	assert.Equal(t, int64(7), w.ID)
	assert.Equal(t, "2023-01-01", entity.FormatDate(w.StartDate))
	assert.Equal(t, "2023-06-01", entity.FormatDate(w.EndDate))
	assert.Equal(t, w, entity.NewWorkExperience(int64(7), w.Payload()))

	db.EndDate = "junio"
	_, err = entity.FromDbPayload("abc", db)
	assert.Error(t, err)
}
