package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.LaborEntryRepository = (*LaborEntryRepo)(nil)

// LaborEntryRepo implementación de los registros de horas sobre PostgreSQL.
type LaborEntryRepo struct {
	q Querier
}

// NewLaborEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLaborEntryRepository(q Querier) *LaborEntryRepo {
	return &LaborEntryRepo{q: q}
}

// Create registra una entrada de horas con las tarifas snapshot.
func (r *LaborEntryRepo) Create(e *entity.LaborEntry) error {
	query := `
		INSERT INTO labor_entries (id, job_order_id, employee_id, date, ordinary_hours, overtime_hours, hourly_cost, client_rate, total_cost, activity, phase, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.JobOrderID, e.EmployeeID, e.Date, e.OrdinaryHours, e.OvertimeHours,
		e.HourlyCost, e.ClientRate, e.TotalCost, e.Activity, e.Phase, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert labor entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada de horas con el nombre del empleado.
func (r *LaborEntryRepo) GetByID(id string) (*entity.LaborEntry, error) {
	query := `
		SELECT l.id, l.job_order_id, l.employee_id, l.date, l.ordinary_hours, l.overtime_hours,
		       l.hourly_cost, l.client_rate, l.total_cost, l.activity, l.phase, l.created_at,
		       e.last_name || ' ' || e.first_name
		FROM labor_entries l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1`
	var l entity.LaborEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.JobOrderID, &l.EmployeeID, &l.Date, &l.OrdinaryHours, &l.OvertimeHours,
		&l.HourlyCost, &l.ClientRate, &l.TotalCost, &l.Activity, &l.Phase, &l.CreatedAt,
		&l.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get labor entry: %w", err)
	}
	return &l, nil
}

// ListByJobOrder devuelve las entradas de horas de la orden por fecha.
func (r *LaborEntryRepo) ListByJobOrder(jobOrderID string) ([]*entity.LaborEntry, error) {
	query := `
		SELECT l.id, l.job_order_id, l.employee_id, l.date, l.ordinary_hours, l.overtime_hours,
		       l.hourly_cost, l.client_rate, l.total_cost, l.activity, l.phase, l.created_at,
		       e.last_name || ' ' || e.first_name
		FROM labor_entries l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.job_order_id = $1
		ORDER BY l.date, l.created_at`
	rows, err := r.q.Query(context.Background(), query, jobOrderID)
	if err != nil {
		return nil, fmt.Errorf("list labor entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LaborEntry
	for rows.Next() {
		var l entity.LaborEntry
		err := rows.Scan(
			&l.ID, &l.JobOrderID, &l.EmployeeID, &l.Date, &l.OrdinaryHours, &l.OvertimeHours,
			&l.HourlyCost, &l.ClientRate, &l.TotalCost, &l.Activity, &l.Phase, &l.CreatedAt,
			&l.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan labor entry: %w", err)
		}
		entries = append(entries, &l)
	}
	return entries, rows.Err()
}
