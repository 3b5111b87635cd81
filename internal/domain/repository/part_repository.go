package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// PartFilter filtros del listado de repuestos.
type PartFilter struct {
	Search   string // busca en código y descripción (ILIKE)
	LowStock bool   // solo repuestos con quantity <= min_quantity
}

// PartRepository define el puerto de persistencia para Part (DIP).
// GetForUpdate y UpdateQuantity solo tienen sentido dentro de una transacción
// del TxRunner: bloquean la fila para la sección crítica del consumo.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	GetByCode(code string) (*entity.Part, error)
	GetForUpdate(id string) (*entity.Part, error)
	UpdateQuantity(partID string, quantity int64) error
	Update(part *entity.Part) error
	List(filter PartFilter) ([]*entity.Part, error)
	Delete(id string) error
}
