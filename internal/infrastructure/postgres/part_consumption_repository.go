package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.PartConsumptionRepository = (*PartConsumptionRepo)(nil)

// PartConsumptionRepo implementación de los consumos de repuestos sobre
// PostgreSQL. Filas inmutables: solo INSERT y SELECT.
type PartConsumptionRepo struct {
	q Querier
}

// NewPartConsumptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartConsumptionRepository(q Querier) *PartConsumptionRepo {
	return &PartConsumptionRepo{q: q}
}

// Create registra un consumo con el precio snapshot ya calculado.
func (r *PartConsumptionRepo) Create(c *entity.PartConsumption) error {
	query := `
		INSERT INTO part_consumptions (id, job_order_id, part_id, quantity, unit_price, total_price, operator, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.JobOrderID, c.PartID, c.Quantity, c.UnitPrice, c.TotalPrice,
		c.Operator, c.Note, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert part consumption: %w", err)
	}
	return nil
}

// ListByJobOrder devuelve los consumos de la orden con código y descripción
// del repuesto.
func (r *PartConsumptionRepo) ListByJobOrder(jobOrderID string) ([]*entity.PartConsumption, error) {
	query := `
		SELECT c.id, c.job_order_id, c.part_id, c.quantity, c.unit_price, c.total_price,
		       c.operator, c.note, c.created_at, p.code, p.description
		FROM part_consumptions c
		JOIN parts p ON p.id = c.part_id
		WHERE c.job_order_id = $1
		ORDER BY c.created_at`
	rows, err := r.q.Query(context.Background(), query, jobOrderID)
	if err != nil {
		return nil, fmt.Errorf("list part consumptions: %w", err)
	}
	defer rows.Close()

	var consumptions []*entity.PartConsumption
	for rows.Next() {
		var c entity.PartConsumption
		err := rows.Scan(
			&c.ID, &c.JobOrderID, &c.PartID, &c.Quantity, &c.UnitPrice, &c.TotalPrice,
			&c.Operator, &c.Note, &c.CreatedAt, &c.PartCode, &c.PartDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("scan part consumption: %w", err)
		}
		consumptions = append(consumptions, &c)
	}
	return consumptions, rows.Err()
}
