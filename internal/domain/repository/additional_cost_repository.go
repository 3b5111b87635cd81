package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// AdditionalCostRepository puerto de los costos adicionales por orden.
type AdditionalCostRepository interface {
	Create(cost *entity.AdditionalCost) error
	ListByJobOrder(jobOrderID string) ([]*entity.AdditionalCost, error)
}
