// Package pdf implementa la generación del reporte imprimible del resumen de
// costos de una orden de trabajo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: TallerPro  │  Código de orden + Fecha apertura     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + P.IVA                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA REPUESTOS: Cant | Código | Descripción | P.U. | Tot  │
//	│  TABLA HORAS: Fecha | Empleado | Ord | Extra | Costo        │
//	│  TABLA ADICIONALES: Fecha | Descripción | Importe           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Repuestos / Horas / Adicionales / TOTAL / Margen  │
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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/taller-pro/internal/application/joborder"
	"github.com/tu-usuario/taller-pro/internal/domain/costing"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

var _ joborder.CostReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa joborder.CostReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCostReport genera el PDF del resumen de costos y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCostReport(
	_ context.Context,
	order *entity.JobOrder,
	consumptions []*entity.PartConsumption,
	labor []*entity.LaborEntry,
	costs []*entity.AdditionalCost,
	summary costing.Summary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de costos "+order.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if order.ClientName != "" {
		m.AddRows(clientRow(order))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	if len(consumptions) > 0 {
		m.AddRows(sectionTitleRow("REPUESTOS"))
		m.AddRows(partsHeaderRow())
		for _, r := range partsRows(consumptions) {
			m.AddRows(r)
		}
	}
	if len(labor) > 0 {
		m.AddRows(sectionTitleRow("MANO DE OBRA"))
		m.AddRows(laborHeaderRow())
		for _, r := range laborRows(labor) {
			m.AddRows(r)
		}
	}
	if len(costs) > 0 {
		m.AddRows(sectionTitleRow("COSTOS ADICIONALES"))
		m.AddRows(costsHeaderRow())
		for _, r := range costsRows(costs) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order, summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y código de orden + fecha (der).
func headerRow(order *entity.JobOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("TallerPro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(order.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMEN DE COSTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Apertura: "+order.OpenedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente de la orden.
func clientRow(order *entity.JobOrder) core.Row {
	detail := order.ClientName
	if order.ClientVAT != "" {
		detail += "   |   P.IVA: " + order.ClientVAT
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detail, props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorGray, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func partsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Cant.", 1, align.Center),
		headerCell("Código", 2, align.Left),
		headerCell("Descripción", 5, align.Left),
		headerCell("P. Unit.", 2, align.Right),
		headerCell("Total", 2, align.Right),
	)
}

func partsRows(consumptions []*entity.PartConsumption) []core.Row {
	result := make([]core.Row, 0, len(consumptions))
	for _, c := range consumptions {
		result = append(result, row.New(6).Add(
			cell(fmt.Sprintf("%d", c.Quantity), 1, align.Center),
			cell(c.PartCode, 2, align.Left),
			cell(c.PartDescription, 5, align.Left),
			cell(money(c.UnitPrice), 2, align.Right),
			cell(money(c.TotalPrice), 2, align.Right),
		))
	}
	return result
}

func laborHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Empleado", 4, align.Left),
		headerCell("Ord.", 2, align.Right),
		headerCell("Extra", 2, align.Right),
		headerCell("Costo", 2, align.Right),
	)
}

func laborRows(labor []*entity.LaborEntry) []core.Row {
	result := make([]core.Row, 0, len(labor))
	for _, l := range labor {
		result = append(result, row.New(6).Add(
			cell(l.Date.Format("02/01/2006"), 2, align.Left),
			cell(l.EmployeeName, 4, align.Left),
			cell(l.OrdinaryHours.StringFixed(2), 2, align.Right),
			cell(l.OvertimeHours.StringFixed(2), 2, align.Right),
			cell(money(l.TotalCost), 2, align.Right),
		))
	}
	return result
}

func costsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Descripción", 8, align.Left),
		headerCell("Importe", 2, align.Right),
	)
}

func costsRows(costs []*entity.AdditionalCost) []core.Row {
	result := make([]core.Row, 0, len(costs))
	for _, c := range costs {
		result = append(result, row.New(6).Add(
			cell(c.Date.Format("02/01/2006"), 2, align.Left),
			cell(c.Description, 8, align.Left),
			cell(money(c.Amount), 2, align.Right),
		))
	}
	return result
}

// totalsRows: bloque de totales con margen al cierre. El margen negativo va
// en rojo.
func totalsRows(order *entity.JobOrder, s costing.Summary) []core.Row {
	label := func(t string) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(t string) core.Component {
		return text.New(t, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	marginColor := colorPrimary
	if s.Margin.IsNegative() {
		marginColor = colorRed
	}
	grand := func(t string, c *props.Color) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: c, Right: 1,
		})
	}

	rows := []core.Row{
		row.New(6).Add(col.New(6), col.New(4).Add(label("Repuestos:")), col.New(2).Add(value(money(s.TotalParts)))),
		row.New(6).Add(col.New(6), col.New(4).Add(label("Mano de obra:")), col.New(2).Add(value(money(s.TotalLabor)))),
		row.New(6).Add(col.New(6), col.New(4).Add(label("Adicionales:")), col.New(2).Add(value(money(s.TotalMisc)))),
		row.New(8).Add(col.New(6), col.New(4).Add(grand("COSTO TOTAL:", colorPrimary)), col.New(2).Add(grand(money(s.TotalCost), colorPrimary))),
	}
	if order.QuotedAmount.GreaterThan(decimal.Zero) {
		rows = append(rows,
			row.New(6).Add(col.New(6), col.New(4).Add(label("Presupuesto:")), col.New(2).Add(value(money(order.QuotedAmount)))),
			row.New(8).Add(col.New(6),
				col.New(4).Add(grand("MARGEN:", marginColor)),
				col.New(2).Add(grand(money(s.Margin)+"  ("+s.MarginPercent.StringFixed(1)+"%)", marginColor)),
			),
		)
	}
	return rows
}

func money(d decimal.Decimal) string {
	return "€ " + d.StringFixed(2)
}
