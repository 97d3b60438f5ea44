package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workexperience-api/internal/domain/entity"
)

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"Built things"}, wrapWords("Built things", 20))
	assert.Equal(t, []string{"uno dos", "tres"}, wrapWords("uno dos tres", 8))
	assert.Equal(t, []string{"abcde", "fgh", "x"}, wrapWords("abcdefgh x", 5))
	assert.Empty(t, wrapWords("   ", 10))

	for _, l := range wrapWords(strings.Repeat("palabra ", 100), descriptionLineWidth) {
		assert.LessOrEqual(t, len([]rune(l)), descriptionLineWidth)
	}
}

func TestGenerateWorkExperiencePDF(t *testing.T) {
	g := NewMarotoPDFGenerator("test")
	g.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	start, _ := entity.ParseDate("2023-01-01")
	end, _ := entity.ParseDate("2023-06-01")
	items := []entity.WorkExperiencePayload{{
		CompanyName:      "Acme",
		JobTitle:         "Engineer",
		WorkCityLocation: "Remote",
		StartDate:        start,
		EndDate:          end,
		Description:      strings.Repeat("Built things. ", 40),
	}}

	for name, in := range map[string][]entity.WorkExperiencePayload{"con datos": items, "vacío": nil} {
		t.Run(name, func(t *testing.T) {
			doc, err := g.GenerateWorkExperiencePDF(context.Background(), in)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
		})
	}
}
