package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// JobOrderFilter filtros del listado de órdenes.
type JobOrderFilter struct {
	Status   string
	ClientID string
}

// JobOrderRepository define el puerto de persistencia para JobOrder.
type JobOrderRepository interface {
	Create(order *entity.JobOrder) error
	GetByID(id string) (*entity.JobOrder, error)
	GetByCode(code string) (*entity.JobOrder, error)
	Update(order *entity.JobOrder) error
	List(filter JobOrderFilter) ([]*entity.JobOrder, error)
	Delete(id string) error
	// CountDependents cuenta consumos + horas + costos de la orden;
	// el borrado se rechaza mientras sea > 0.
	CountDependents(id string) (int64, error)
}
