package entity

import "time"

// Client registro maestro de cliente.
type Client struct {
	ID        string
	Name      string
	VATNumber string // partita IVA
	TaxCode   string // codice fiscale
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
