// Package pdf implementa la generación del reporte de stock por campus.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Stock — Campus (CÓDIGO) + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Categoría | Cant | Unidad | P.Unit | Valor    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-stock-api/internal/application/report"
	"github.com/jhoicas/campus-stock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 68, Green: 114, Blue: 196} // mismo azul del header xlsx
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.StockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, campus *entity.Campus, stocks []*entity.Stock) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(campus))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	total := decimal.Zero
	for _, s := range stocks {
		m.AddRows(stockRow(s))
		total = total.Add(s.TotalValue())
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(stocks), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del campus (izq) y fecha de generación (der).
func headerRow(campus *entity.Campus) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", campus.Name, campus.Code), props.Text{
				Size: 10, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Unidad", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// stockRow: una fila por ítem.
func stockRow(s *entity.Stock) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(s.ItemName, props.Text{Size: 8, Align: align.Left, Top: 1})),
		col.New(2).Add(text.New(s.Category, props.Text{Size: 8, Align: align.Left, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", s.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(s.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(s.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(s.TotalValue().StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// totalRow: conteo de ítems y total general.
func totalRow(count int, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("%d ítems", count), props.Text{
			Size: 9, Align: align.Left, Top: 2, Color: colorGray,
		})),
		col.New(4).Add(text.New("TOTAL GENERAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(2).Add(text.New(total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}
