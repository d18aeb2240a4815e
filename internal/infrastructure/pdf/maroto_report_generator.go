// Package pdf genera el reporte PDF de resumen de cultivos del owner.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la granja (usuario) + fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cultivo | Estado | Siembra | Cosecha | Rendimiento  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cultivos sembrados / cosechados                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/AgriCore-api/internal/application/report"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoReportGenerator implementa report.CropReportGenerator.
var _ report.CropReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.CropReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCropReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCropReport(
	_ context.Context,
	owner *entity.User,
	crops []*entity.Crop,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de cultivos", true).
		WithAuthor(owner.FullName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableCropRows(crops) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(crops))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del granjero (izq) y título del reporte (der).
func headerRow(owner *entity.User) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(owner.FullName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("@"+owner.Username, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE CULTIVOS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 4,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cultivos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cultivo", 4, align.Left),
		h("Estado", 2, align.Center),
		h("Siembra", 2, align.Center),
		h("Cosecha obj.", 2, align.Center),
		h("Rendimiento", 2, align.Right),
	)
}

// tableCropRows: una fila por cultivo.
func tableCropRows(crops []*entity.Crop) []core.Row {
	result := make([]core.Row, 0, len(crops))
	for _, c := range crops {
		yield := "—"
		if c.ActualYield != nil {
			yield = fmt.Sprintf("%d", *c.ActualYield)
		}
		name := c.CropName
		if c.Variety != "" {
			name = fmt.Sprintf("%s (%s)", c.CropName, c.Variety)
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(c.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(c.PlantingDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(c.HarvestingDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(yield, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: conteo de cultivos por estado.
func totalsRow(crops []*entity.Crop) core.Row {
	var planted, harvested int
	for _, c := range crops {
		switch c.Status {
		case entity.CropStatusPlanted:
			planted++
		case entity.CropStatusHarvested:
			harvested++
		}
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Sembrados: %d   |   Cosechados: %d   |   Total: %d",
				planted, harvested, len(crops),
			), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
		),
	)
}
