package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL.
// Solo INSERT y SELECT: las filas no se actualizan ni se borran.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra una entrada del libro de movimientos.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, part_id, type, quantity, quantity_before, quantity_after, job_order_id, reason, operator, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.PartID, m.Type, m.Quantity, m.QuantityBefore, m.QuantityAfter,
		m.JobOrderID, m.Reason, m.Operator, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByPart devuelve el storico del repuesto, más reciente primero, con el
// código y la descripción de la orden asociada cuando la hay.
func (r *StockMovementRepo) ListByPart(partID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.part_id, m.type, m.quantity, m.quantity_before, m.quantity_after,
		       m.job_order_id, m.reason, m.operator, m.created_at,
		       COALESCE(o.code, ''), COALESCE(o.description, '')
		FROM stock_movements m
		LEFT JOIN job_orders o ON o.id = m.job_order_id
		WHERE m.part_id = $1
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, partID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		err := rows.Scan(
			&m.ID, &m.PartID, &m.Type, &m.Quantity, &m.QuantityBefore, &m.QuantityAfter,
			&m.JobOrderID, &m.Reason, &m.Operator, &m.CreatedAt,
			&m.JobOrderCode, &m.JobOrderDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
