// Package costing implementa la agregación de costos de una orden de trabajo
// (servicio de dominio, puro). Toda la aritmética monetaria usa
// decimal.Decimal: la suma repetida en float64 acumula deriva de redondeo.
package costing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary son los seis números calculados del resumen de una orden.
type Summary struct {
	TotalParts    decimal.Decimal `json:"total_parts"`
	TotalLabor    decimal.Decimal `json:"total_labor"`
	TotalMisc     decimal.Decimal `json:"total_misc"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// Summarize calcula el resumen de costos desde las filas actuales.
// Determinista: mismas filas, mismo resultado.
//
//	TotalParts = Σ cantidad * precio unitario (snapshot)
//	TotalLabor = Σ costo total de cada registro de horas
//	TotalMisc  = Σ importes de costos adicionales
//	Margin     = presupuesto - TotalCost (presupuesto ausente cuenta como 0)
//	MarginPct  = Margin / presupuesto * 100, o 0 si presupuesto <= 0
func Summarize(
	quotedAmount decimal.Decimal,
	consumptions []*entity.PartConsumption,
	labor []*entity.LaborEntry,
	costs []*entity.AdditionalCost,
) Summary {
	var s Summary
	s.TotalParts = decimal.Zero
	s.TotalLabor = decimal.Zero
	s.TotalMisc = decimal.Zero

	for _, c := range consumptions {
		s.TotalParts = s.TotalParts.Add(c.UnitPrice.Mul(decimal.NewFromInt(c.Quantity)))
	}
	for _, l := range labor {
		s.TotalLabor = s.TotalLabor.Add(l.TotalCost)
	}
	for _, ac := range costs {
		s.TotalMisc = s.TotalMisc.Add(ac.Amount)
	}

	s.TotalCost = s.TotalParts.Add(s.TotalLabor).Add(s.TotalMisc)
	s.Margin = quotedAmount.Sub(s.TotalCost)
	if quotedAmount.GreaterThan(decimal.Zero) {
		s.MarginPercent = s.Margin.Div(quotedAmount).Mul(hundred)
	} else {
		s.MarginPercent = decimal.Zero
	}
	return s
}

// LaborTotal calcula el costo de un registro de horas:
// (ordinarias + extra) * costo horario. Las horas extra no llevan recargo.
func LaborTotal(ordinary, overtime, hourlyCost decimal.Decimal) decimal.Decimal {
	return ordinary.Add(overtime).Mul(hourlyCost)
}

// ConsumptionTotal calcula el costo de un consumo: cantidad * precio snapshot.
func ConsumptionTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}
