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

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partColumns = `p.id, p.code, p.description, p.quantity, p.min_quantity,
	p.purchase_price, p.sale_price, p.supplier_id, p.location, p.notes,
	p.created_at, p.updated_at, COALESCE(s.name, '')`

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.Code, &p.Description, &p.Quantity, &p.MinQuantity,
		&p.PurchasePrice, &p.SalePrice, &p.SupplierID, &p.Location, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt, &p.SupplierName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo repuesto.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, code, description, quantity, min_quantity, purchase_price, sale_price, supplier_id, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Code, part.Description, part.Quantity, part.MinQuantity,
		part.PurchasePrice, part.SalePrice, part.SupplierID, part.Location, part.Notes,
		part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID con el nombre del proveedor.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un repuesto por su código único.
func (r *PartRepo) GetByCode(code string) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.code = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part by code: %w", err)
	}
	return p, nil
}

// GetForUpdate bloquea la fila del repuesto (FOR UPDATE) dentro de la
// transacción en curso. Dos consumos concurrentes del mismo repuesto se
// serializan aquí.
func (r *PartRepo) GetForUpdate(id string) (*entity.Part, error) {
	query := `
		SELECT id, code, description, quantity, min_quantity, purchase_price, sale_price, supplier_id, location, notes, created_at, updated_at
		FROM parts WHERE id = $1 FOR UPDATE`
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Description, &p.Quantity, &p.MinQuantity,
		&p.PurchasePrice, &p.SalePrice, &p.SupplierID, &p.Location, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part for update: %w", err)
	}
	return &p, nil
}

// UpdateQuantity fija el stock del repuesto. Solo lo llama el motor de
// inventario con la fila ya bloqueada.
func (r *PartRepo) UpdateQuantity(partID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET quantity = $2, updated_at = now() WHERE id = $1`,
		partID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update part quantity: %w", err)
	}
	return nil
}

// Update actualiza los datos maestros del repuesto. La cantidad no se toca:
// se maneja vía movimientos.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET code = $2, description = $3, min_quantity = $4, purchase_price = $5, sale_price = $6, supplier_id = $7, location = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Code, part.Description, part.MinQuantity,
		part.PurchasePrice, part.SalePrice, part.SupplierID, part.Location, part.Notes,
		part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// List lista repuestos con búsqueda por código/descripción y filtro de stock bajo.
func (r *PartRepo) List(filter repository.PartFilter) ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE ($1 = '' OR p.code ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%')
		  AND (NOT $2 OR p.quantity <= p.min_quantity)
		ORDER BY p.code`
	rows, err := r.q.Query(context.Background(), query, filter.Search, filter.LowStock)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var parts []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// Delete borra un repuesto. Con movimientos o consumos asociados la FK lo
// impide y se devuelve ErrConflict.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}
