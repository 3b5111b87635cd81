package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Empleados ─────────────────────────────────────────────────────────────────

// CreateEmployeeRequest body para POST /api/v1/employees.
type CreateEmployeeRequest struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Code       string          `json:"code,omitempty"`
	HourlyCost decimal.Decimal `json:"hourly_cost"`
	ClientRate decimal.Decimal `json:"client_rate"`
	Role       string          `json:"role,omitempty"`
	Active     *bool           `json:"active,omitempty"` // default true
}

// UpdateEmployeeRequest body para PUT /api/v1/employees/:id.
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"first_name,omitempty"`
	LastName   *string          `json:"last_name,omitempty"`
	Code       *string          `json:"code,omitempty"`
	HourlyCost *decimal.Decimal `json:"hourly_cost,omitempty"`
	ClientRate *decimal.Decimal `json:"client_rate,omitempty"`
	Role       *string          `json:"role,omitempty"`
	Active     *bool            `json:"active,omitempty"`
}

// EmployeeResponse representación de un empleado.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Code       string          `json:"code,omitempty"`
	HourlyCost decimal.Decimal `json:"hourly_cost"`
	ClientRate decimal.Decimal `json:"client_rate"`
	Role       string          `json:"role,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateClientRequest body para POST /api/v1/clients.
type CreateClientRequest struct {
	Name      string `json:"name"`
	VATNumber string `json:"vat_number,omitempty"`
	TaxCode   string `json:"tax_code,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

// UpdateClientRequest body para PUT /api/v1/clients/:id.
type UpdateClientRequest struct {
	Name      *string `json:"name,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	TaxCode   *string `json:"tax_code,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// ClientResponse representación de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VATNumber string    `json:"vat_number,omitempty"`
	TaxCode   string    `json:"tax_code,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplierRequest body para POST /api/v1/suppliers.
type CreateSupplierRequest struct {
	Name      string `json:"name"`
	VATNumber string `json:"vat_number,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/v1/suppliers/:id.
type UpdateSupplierRequest struct {
	Name      *string `json:"name,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VATNumber string    `json:"vat_number,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
