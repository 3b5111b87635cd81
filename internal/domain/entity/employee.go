package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee es un registro maestro de empleado. HourlyCost y ClientRate se
// leen SOLO al crear una LaborEntry; cambiarlos después no afecta entradas
// pasadas (exactitud histórica).
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Code       string
	HourlyCost decimal.Decimal // costo interno por hora
	ClientRate decimal.Decimal // tarifa facturable al cliente por hora
	Role       string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName devuelve "Apellido Nombre" como lo muestra la UI.
func (e *Employee) FullName() string {
	return e.LastName + " " + e.FirstName
}
