package costing_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/taller-pro/internal/domain/costing"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// buildRows arma filas que suman 120.00 de repuestos, 80.00 de horas y
// 25.00 de costos adicionales.
func buildRows() ([]*entity.PartConsumption, []*entity.LaborEntry, []*entity.AdditionalCost) {
	consumptions := []*entity.PartConsumption{
		{Quantity: 4, UnitPrice: dec("12.50")}, // 50.00
		{Quantity: 2, UnitPrice: dec("35.00")}, // 70.00
	}
	labor := []*entity.LaborEntry{
		{TotalCost: dec("50.00")},
		{TotalCost: dec("30.00")},
	}
	costs := []*entity.AdditionalCost{
		{Amount: dec("10.00")},
		{Amount: dec("15.00")},
	}
	return consumptions, labor, costs
}

func TestSummarize_VectorAritmetico(t *testing.T) {
	consumptions, labor, costs := buildRows()

	s := costing.Summarize(dec("300.00"), consumptions, labor, costs)

	assert.True(t, s.TotalParts.Equal(dec("120.00")), "TotalParts = %s", s.TotalParts)
	assert.True(t, s.TotalLabor.Equal(dec("80.00")), "TotalLabor = %s", s.TotalLabor)
	assert.True(t, s.TotalMisc.Equal(dec("25.00")), "TotalMisc = %s", s.TotalMisc)
	assert.True(t, s.TotalCost.Equal(dec("225.00")), "TotalCost = %s", s.TotalCost)
	assert.True(t, s.Margin.Equal(dec("75.00")), "Margin = %s", s.Margin)
	assert.True(t, s.MarginPercent.Equal(dec("25.00")), "MarginPercent = %s", s.MarginPercent)
}

// TestSummarize_Determinista: mismas filas dos veces, salida byte a byte igual.
func TestSummarize_Determinista(t *testing.T) {
	consumptions, labor, costs := buildRows()

	s1 := costing.Summarize(dec("300.00"), consumptions, labor, costs)
	s2 := costing.Summarize(dec("300.00"), consumptions, labor, costs)

	b1, err := json.Marshal(s1)
	require.NoError(t, err)
	b2, err := json.Marshal(s2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "el resumen debe ser idéntico sin escrituras intermedias")
}

// Sin presupuesto: margen negativo igual al costo total y porcentaje 0.
func TestSummarize_SinPresupuesto(t *testing.T) {
	consumptions, labor, costs := buildRows()

	s := costing.Summarize(decimal.Zero, consumptions, labor, costs)

	assert.True(t, s.Margin.Equal(dec("-225.00")), "Margin = %s", s.Margin)
	assert.True(t, s.MarginPercent.IsZero(), "MarginPercent = %s", s.MarginPercent)
}

func TestSummarize_SinFilas(t *testing.T) {
	s := costing.Summarize(dec("100.00"), nil, nil, nil)

	assert.True(t, s.TotalCost.IsZero())
	assert.True(t, s.Margin.Equal(dec("100.00")))
	assert.True(t, s.MarginPercent.Equal(dec("100")))
}

func TestLaborTotal(t *testing.T) {
	// (8 + 2) * 22.50 = 225.00; las extra van a la misma tarifa
	total := costing.LaborTotal(dec("8"), dec("2"), dec("22.50"))
	assert.True(t, total.Equal(dec("225.00")), "total = %s", total)
}

func TestConsumptionTotal(t *testing.T) {
	total := costing.ConsumptionTotal(3, dec("19.99"))
	assert.True(t, total.Equal(dec("59.97")), "total = %s", total)
}

// La suma decimal no deriva con muchos sumandos pequeños (0.10 x 1000 = 100).
func TestSummarize_SinDerivaDeRedondeo(t *testing.T) {
	var costs []*entity.AdditionalCost
	for i := 0; i < 1000; i++ {
		costs = append(costs, &entity.AdditionalCost{Amount: dec("0.10")})
	}
	s := costing.Summarize(decimal.Zero, nil, nil, costs)
	assert.True(t, s.TotalMisc.Equal(dec("100.00")), "TotalMisc = %s", s.TotalMisc)
}
