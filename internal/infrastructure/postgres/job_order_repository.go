package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.JobOrderRepository = (*JobOrderRepo)(nil)

// JobOrderRepo implementación del puerto JobOrderRepository sobre PostgreSQL.
type JobOrderRepo struct {
	q Querier
}

// NewJobOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobOrderRepository(q Querier) *JobOrderRepo {
	return &JobOrderRepo{q: q}
}

const jobOrderColumns = `o.id, o.code, o.client_id, o.description, o.opened_at,
	o.expected_close_at, o.closed_at, o.status, o.priority, o.quoted_amount,
	o.notes, o.created_at, o.updated_at, COALESCE(c.name, ''), COALESCE(c.vat_number, '')`

func scanJobOrder(row pgx.Row) (*entity.JobOrder, error) {
	var o entity.JobOrder
	err := row.Scan(
		&o.ID, &o.Code, &o.ClientID, &o.Description, &o.OpenedAt,
		&o.ExpectedCloseAt, &o.ClosedAt, &o.Status, &o.Priority, &o.QuotedAmount,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.ClientName, &o.ClientVAT,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una nueva orden de trabajo.
func (r *JobOrderRepo) Create(order *entity.JobOrder) error {
	query := `
		INSERT INTO job_orders (id, code, client_id, description, opened_at, expected_close_at, closed_at, status, priority, quoted_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Code, order.ClientID, order.Description, order.OpenedAt,
		order.ExpectedCloseAt, order.ClosedAt, order.Status, order.Priority,
		order.QuotedAmount, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con los datos del cliente.
func (r *JobOrderRepo) GetByID(id string) (*entity.JobOrder, error) {
	query := `
		SELECT ` + jobOrderColumns + `
		FROM job_orders o LEFT JOIN clients c ON c.id = o.client_id
		WHERE o.id = $1`
	o, err := scanJobOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order: %w", err)
	}
	return o, nil
}

// GetByCode obtiene una orden por su código único.
func (r *JobOrderRepo) GetByCode(code string) (*entity.JobOrder, error) {
	query := `
		SELECT ` + jobOrderColumns + `
		FROM job_orders o LEFT JOIN clients c ON c.id = o.client_id
		WHERE o.code = $1`
	o, err := scanJobOrder(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order by code: %w", err)
	}
	return o, nil
}

// Update actualiza una orden existente.
func (r *JobOrderRepo) Update(order *entity.JobOrder) error {
	query := `
		UPDATE job_orders SET code = $2, client_id = $3, description = $4, expected_close_at = $5, closed_at = $6, status = $7, priority = $8, quoted_amount = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Code, order.ClientID, order.Description,
		order.ExpectedCloseAt, order.ClosedAt, order.Status, order.Priority,
		order.QuotedAmount, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update job order: %w", err)
	}
	return nil
}

// List lista órdenes con filtros opcionales por estado y cliente, más
// recientes primero.
//
// El filtro de cliente pasa por NULLIF: el planificador evalúa el cast a
// uuid aunque el OR no aplique, y '' directo a uuid falla al preparar el
// plan. NULLIF($2, '') se pliega a NULL y el cast queda inocuo.
func (r *JobOrderRepo) List(filter repository.JobOrderFilter) ([]*entity.JobOrder, error) {
	query := `
		SELECT ` + jobOrderColumns + `
		FROM job_orders o LEFT JOIN clients c ON c.id = o.client_id
		WHERE ($1 = '' OR o.status = $1)
		  AND (NULLIF($2, '') IS NULL OR o.client_id = NULLIF($2, '')::uuid)
		ORDER BY o.opened_at DESC, o.code DESC`
	rows, err := r.q.Query(context.Background(), query, filter.Status, filter.ClientID)
	if err != nil {
		return nil, fmt.Errorf("list job orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.JobOrder
	for rows.Next() {
		o, err := scanJobOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Delete borra una orden. El caso de uso ya verificó que no tenga
// dependientes; la FK es la última línea de defensa.
func (r *JobOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM job_orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete job order: %w", err)
	}
	return nil
}

// CountDependents cuenta consumos + registros de horas + costos adicionales
// de la orden.
func (r *JobOrderRepo) CountDependents(id string) (int64, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM part_consumptions WHERE job_order_id = $1)
		     + (SELECT COUNT(*) FROM labor_entries WHERE job_order_id = $1)
		     + (SELECT COUNT(*) FROM additional_costs WHERE job_order_id = $1)`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count job order dependents: %w", err)
	}
	return n, nil
}
