package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de trabajo. Las transiciones son libres (cualquier
// estado a cualquier estado): el taller corrige órdenes cerradas por error y
// un autómata de transiciones rechazaría esas correcciones.
const (
	JobOrderStatusOpen       = "open"
	JobOrderStatusInProgress = "in_progress"
	JobOrderStatusSuspended  = "suspended"
	JobOrderStatusClosed     = "closed"
	JobOrderStatusCancelled  = "cancelled"
)

// Prioridades.
const (
	JobOrderPriorityLow    = "low"
	JobOrderPriorityMedium = "medium"
	JobOrderPriorityHigh   = "high"
)

// JobOrder representa una orden de trabajo (commessa) con su contabilidad de
// costos. Los totales no se guardan aquí: el agregador los recalcula siempre
// desde las filas de consumo, horas y costos adicionales.
type JobOrder struct {
	ID              string
	Code            string // código único
	ClientID        *string
	Description     string
	OpenedAt        time.Time
	ExpectedCloseAt *time.Time
	ClosedAt        *time.Time
	Status          string
	Priority        string
	QuotedAmount    decimal.Decimal // importe presupuestado (0 si no cotizada)
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Datos del cliente (JOIN en lecturas).
	ClientName string
	ClientVAT  string
}

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case JobOrderStatusOpen, JobOrderStatusInProgress, JobOrderStatusSuspended,
		JobOrderStatusClosed, JobOrderStatusCancelled:
		return true
	}
	return false
}

// ValidPriority indica si p es una prioridad conocida.
func ValidPriority(p string) bool {
	switch p {
	case JobOrderPriorityLow, JobOrderPriorityMedium, JobOrderPriorityHigh:
		return true
	}
	return false
}
