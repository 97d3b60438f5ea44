// Package pdf genera la sección "Work Experience" de un CV en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Cargo                                     Inicio – Fin     │
//	│  Empresa · Ciudad                                           │
//	│  Descripción (varias líneas)                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ... una entrada por experiencia, de la más reciente        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/workexperience-api/internal/application/usecase"
	"github.com/jhoicas/workexperience-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// descriptionLineWidth caracteres aproximados por línea de descripción.
const descriptionLineWidth = 110

var _ usecase.WorkExperiencePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.WorkExperiencePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	title  string
	author string
	now    func() time.Time
}

// NewMarotoPDFGenerator construye el generador. author suele ser APP_NAME.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{title: "Work Experience", author: author, now: time.Now}
}

// GenerateWorkExperiencePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateWorkExperiencePDF(
	_ context.Context,
	items []entity.WorkExperiencePayload,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No work experience recorded.", props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Center,
			}),
		)))
	}
	for _, it := range items {
		m.AddRows(experienceRows(it)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+generatedAt.Format(entity.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// experienceRows: cargo + periodo, empresa + ciudad y la descripción partida en líneas.
func experienceRows(it entity.WorkExperiencePayload) []core.Row {
	period := entity.FormatDate(it.StartDate) + " – " + entity.FormatDate(it.EndDate)
	rows := []core.Row{
		row.New(8).Add(
			col.New(8).Add(text.New(it.JobTitle, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			})),
			col.New(4).Add(text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			})),
		),
		row.New(6).Add(col.New(12).Add(
			text.New(it.CompanyName+" · "+it.WorkCityLocation, props.Text{
				Style: fontstyle.Italic, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, l := range wrapWords(it.Description, descriptionLineWidth) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 9, Top: 0.5}),
		)))
	}
	return append(rows, row.New(3))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// wrapWords divide s en líneas de como máximo n runas sin cortar palabras
// (salvo palabras más largas que n).
func wrapWords(s string, n int) []string {
	var (
		lines []string
		cur   []rune
	)
	for _, w := range strings.Fields(s) {
		word := []rune(w)
		for len(word) > n {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(word[:n]))
			word = word[n:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, word...)
		case len(cur)+1+len(word) <= n:
			cur = append(append(cur, ' '), word...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), word...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
