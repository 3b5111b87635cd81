package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del almacén. Quantity es el stock actual y solo
// se modifica vía el motor de inventario (carga manual o consumo por orden de
// trabajo); nunca puede quedar negativo.
type Part struct {
	ID            string
	Code          string // código único
	Description   string
	Quantity      int64 // stock actual (>= 0, invariante)
	MinQuantity   int64 // umbral de stock mínimo (alerta sotto scorta)
	PurchasePrice decimal.Decimal // precio unitario de compra
	SalePrice     decimal.Decimal // precio unitario de venta
	SupplierID    *string
	Location      string // ubicación física en el almacén
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// SupplierName se llena con JOIN en lecturas; no se persiste en parts.
	SupplierName string
}

// IsLowStock indica si el repuesto está en o por debajo del stock mínimo.
func (p *Part) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}
