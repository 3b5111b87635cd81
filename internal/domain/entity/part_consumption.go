package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartConsumption asocia un repuesto consumido a una orden de trabajo.
// UnitPrice es el precio de compra del repuesto copiado al momento del
// consumo (snapshot): cambios posteriores del precio no alteran esta fila.
// Inmutable una vez creada.
type PartConsumption struct {
	ID         string
	JobOrderID string
	PartID     string
	Quantity   int64
	UnitPrice  decimal.Decimal // snapshot del precio de compra
	TotalPrice decimal.Decimal // Quantity * UnitPrice
	Operator   string
	Note       string
	CreatedAt  time.Time

	// Etiquetas del repuesto (JOIN en lecturas).
	PartCode        string
	PartDescription string
}
