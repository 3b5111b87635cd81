package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest body para POST /api/v1/parts.
type CreatePartRequest struct {
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	MinQuantity   int64           `json:"min_quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	Location      string          `json:"location,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// UpdatePartRequest body para PUT /api/v1/parts/:id. Campos nil no se tocan.
// Quantity no está: el stock solo se mueve vía carga/consumo.
type UpdatePartRequest struct {
	Code          *string          `json:"code,omitempty"`
	Description   *string          `json:"description,omitempty"`
	MinQuantity   *int64           `json:"min_quantity,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	Location      *string          `json:"location,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// PartResponse representación de un repuesto.
type PartResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	MinQuantity   int64           `json:"min_quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Location      string          `json:"location,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockInRequest body para POST /api/v1/parts/stock-in.
type StockInRequest struct {
	PartID   string `json:"part_id"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
	Operator string `json:"operator,omitempty"`
}

// StockInResponse cantidades antes y después de la carga.
type StockInResponse struct {
	Message          string `json:"message"`
	PreviousQuantity int64  `json:"previous_quantity"`
	NewQuantity      int64  `json:"new_quantity"`
}

// StockMovementResponse entrada del storico de un repuesto.
type StockMovementResponse struct {
	ID                  string    `json:"id"`
	PartID              string    `json:"part_id"`
	Type                string    `json:"type"`
	Quantity            int64     `json:"quantity"`
	QuantityBefore      int64     `json:"quantity_before"`
	QuantityAfter       int64     `json:"quantity_after"`
	JobOrderID          *string   `json:"job_order_id,omitempty"`
	JobOrderCode        string    `json:"job_order_code,omitempty"`
	JobOrderDescription string    `json:"job_order_description,omitempty"`
	Reason              string    `json:"reason,omitempty"`
	Operator            string    `json:"operator,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
