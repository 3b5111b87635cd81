package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.AdditionalCostRepository = (*AdditionalCostRepo)(nil)

// AdditionalCostRepo implementación de los costos adicionales sobre PostgreSQL.
type AdditionalCostRepo struct {
	q Querier
}

// NewAdditionalCostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdditionalCostRepository(q Querier) *AdditionalCostRepo {
	return &AdditionalCostRepo{q: q}
}

// Create registra un costo adicional.
func (r *AdditionalCostRepo) Create(c *entity.AdditionalCost) error {
	query := `
		INSERT INTO additional_costs (id, job_order_id, description, amount, date, type, supplier_invoice, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.JobOrderID, c.Description, c.Amount, c.Date, c.Type,
		c.SupplierInvoice, c.Note, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert additional cost: %w", err)
	}
	return nil
}

// ListByJobOrder devuelve los costos adicionales de la orden por fecha.
func (r *AdditionalCostRepo) ListByJobOrder(jobOrderID string) ([]*entity.AdditionalCost, error) {
	query := `
		SELECT id, job_order_id, description, amount, date, type, supplier_invoice, note, created_at
		FROM additional_costs
		WHERE job_order_id = $1
		ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, jobOrderID)
	if err != nil {
		return nil, fmt.Errorf("list additional costs: %w", err)
	}
	defer rows.Close()

	var costs []*entity.AdditionalCost
	for rows.Next() {
		var c entity.AdditionalCost
		err := rows.Scan(
			&c.ID, &c.JobOrderID, &c.Description, &c.Amount, &c.Date, &c.Type,
			&c.SupplierInvoice, &c.Note, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan additional cost: %w", err)
		}
		costs = append(costs, &c)
	}
	return costs, rows.Err()
}
