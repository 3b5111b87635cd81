package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LaborEntry registra horas trabajadas sobre una orden. HourlyCost y
// ClientRate se copian del empleado al momento del registro (snapshot):
// subirle la tarifa a un empleado no reescribe el costo histórico.
// TotalCost = (OrdinaryHours + OvertimeHours) * HourlyCost; las horas extra
// no llevan recargo en este diseño.
type LaborEntry struct {
	ID            string
	JobOrderID    string
	EmployeeID    string
	Date          time.Time
	OrdinaryHours decimal.Decimal
	OvertimeHours decimal.Decimal
	HourlyCost    decimal.Decimal // snapshot del costo horario del empleado
	ClientRate    decimal.Decimal // snapshot de la tarifa facturable
	TotalCost     decimal.Decimal
	Activity      string
	Phase         string // fase de trabajo (diagnóstico, reparación, prueba...)
	CreatedAt     time.Time

	// Nombre del empleado (JOIN en lecturas).
	EmployeeName string
}
