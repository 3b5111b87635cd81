package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdditionalCost es un costo misceláneo imputado a una orden de trabajo
// (transporte, material de terceros, servicios externos...).
type AdditionalCost struct {
	ID              string
	JobOrderID      string
	Description     string
	Amount          decimal.Decimal
	Date            time.Time
	Type            string
	SupplierInvoice string // referencia a factura del proveedor, si existe
	Note            string
	CreatedAt       time.Time
}
