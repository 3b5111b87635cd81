package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// PartConsumptionRepository puerto de los consumos de repuestos por orden.
// Inmutables: solo Create y lecturas.
type PartConsumptionRepository interface {
	Create(consumption *entity.PartConsumption) error
	ListByJobOrder(jobOrderID string) ([]*entity.PartConsumption, error)
}
