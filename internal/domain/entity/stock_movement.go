package entity

import "time"

// Tipos de movimiento del almacén.
const (
	MovementTypeStockIn     = "stock_in"    // carga manual
	MovementTypeConsumption = "consumption" // consumo por orden de trabajo
)

// StockMovement es una entrada inmutable del libro de movimientos: registra el
// delta de cantidad y el antes/después. Se crea exactamente una vez por
// operación mutante y nunca se actualiza ni se borra.
type StockMovement struct {
	ID             string
	PartID         string
	Type           string // stock_in | consumption
	Quantity       int64  // delta con signo: positivo carga, negativo consumo
	QuantityBefore int64
	QuantityAfter  int64
	JobOrderID     *string // solo para consumption
	Reason         string
	Operator       string
	CreatedAt      time.Time

	// Etiquetas de la orden asociada (JOIN en lecturas).
	JobOrderCode        string
	JobOrderDescription string
}
