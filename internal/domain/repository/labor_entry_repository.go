package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// LaborEntryRepository puerto de los registros de horas.
type LaborEntryRepository interface {
	Create(entry *entity.LaborEntry) error
	GetByID(id string) (*entity.LaborEntry, error)
	ListByJobOrder(jobOrderID string) ([]*entity.LaborEntry, error)
}
