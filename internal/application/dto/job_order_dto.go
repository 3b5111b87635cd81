package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/costing"
)

// CreateJobOrderRequest body para POST /api/v1/job-orders.
// Las fechas van como "YYYY-MM-DD".
type CreateJobOrderRequest struct {
	Code            string          `json:"code"`
	ClientID        *string         `json:"client_id,omitempty"`
	Description     string          `json:"description"`
	OpenedAt        string          `json:"opened_at,omitempty"`
	ExpectedCloseAt string          `json:"expected_close_at,omitempty"`
	Status          string          `json:"status,omitempty"`
	Priority        string          `json:"priority,omitempty"`
	QuotedAmount    decimal.Decimal `json:"quoted_amount"`
	Notes           string          `json:"notes,omitempty"`
}

// UpdateJobOrderRequest body para PUT /api/v1/job-orders/:id. Campos nil no se tocan.
type UpdateJobOrderRequest struct {
	Code            *string          `json:"code,omitempty"`
	ClientID        *string          `json:"client_id,omitempty"`
	Description     *string          `json:"description,omitempty"`
	ExpectedCloseAt *string          `json:"expected_close_at,omitempty"`
	ClosedAt        *string          `json:"closed_at,omitempty"`
	Status          *string          `json:"status,omitempty"`
	Priority        *string          `json:"priority,omitempty"`
	QuotedAmount    *decimal.Decimal `json:"quoted_amount,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// JobOrderResponse representación de una orden en listados.
type JobOrderResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	ClientID        *string         `json:"client_id,omitempty"`
	ClientName      string          `json:"client_name,omitempty"`
	Description     string          `json:"description"`
	OpenedAt        time.Time       `json:"opened_at"`
	ExpectedCloseAt *time.Time      `json:"expected_close_at,omitempty"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	Status          string          `json:"status"`
	Priority        string          `json:"priority"`
	QuotedAmount    decimal.Decimal `json:"quoted_amount"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// JobOrderDetailResponse detalle completo: orden + listas + resumen calculado.
// El resumen se recalcula en cada llamada desde las filas actuales.
type JobOrderDetailResponse struct {
	JobOrderResponse
	Consumptions    []PartConsumptionResponse `json:"consumptions"`
	LaborEntries    []LaborEntryResponse      `json:"labor_entries"`
	AdditionalCosts []AdditionalCostResponse  `json:"additional_costs"`
	Summary         costing.Summary           `json:"summary"`
}

// ConsumePartRequest body para POST /api/v1/job-orders/consume-part.
type ConsumePartRequest struct {
	JobOrderID string `json:"job_order_id"`
	PartID     string `json:"part_id"`
	Quantity   int64  `json:"quantity"`
	Operator   string `json:"operator,omitempty"`
	Note       string `json:"note,omitempty"`
}

// PartConsumptionResponse consumo de repuesto registrado.
type PartConsumptionResponse struct {
	ID              string          `json:"id"`
	JobOrderID      string          `json:"job_order_id"`
	PartID          string          `json:"part_id"`
	PartCode        string          `json:"part_code,omitempty"`
	PartDescription string          `json:"part_description,omitempty"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Operator        string          `json:"operator,omitempty"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RecordLaborRequest body para POST /api/v1/job-orders/record-labor.
type RecordLaborRequest struct {
	JobOrderID    string          `json:"job_order_id"`
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	OrdinaryHours decimal.Decimal `json:"ordinary_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Activity      string          `json:"activity,omitempty"`
	Phase         string          `json:"phase,omitempty"`
}

// LaborEntryResponse registro de horas con los snapshots de tarifas.
type LaborEntryResponse struct {
	ID            string          `json:"id"`
	JobOrderID    string          `json:"job_order_id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	Date          time.Time       `json:"date"`
	OrdinaryHours decimal.Decimal `json:"ordinary_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyCost    decimal.Decimal `json:"hourly_cost"`
	ClientRate    decimal.Decimal `json:"client_rate"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Activity      string          `json:"activity,omitempty"`
	Phase         string          `json:"phase,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AddCostRequest body para POST /api/v1/job-orders/add-cost.
type AddCostRequest struct {
	JobOrderID      string          `json:"job_order_id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date,omitempty"` // YYYY-MM-DD
	Type            string          `json:"type,omitempty"`
	SupplierInvoice string          `json:"supplier_invoice,omitempty"`
	Note            string          `json:"note,omitempty"`
}

// AdditionalCostResponse costo adicional registrado.
type AdditionalCostResponse struct {
	ID              string          `json:"id"`
	JobOrderID      string          `json:"job_order_id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Type            string          `json:"type,omitempty"`
	SupplierInvoice string          `json:"supplier_invoice,omitempty"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
