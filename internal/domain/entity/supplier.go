package entity

import "time"

// Supplier registro maestro de proveedor de repuestos.
type Supplier struct {
	ID        string
	Name      string
	VATNumber string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
