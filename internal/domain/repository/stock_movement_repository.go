package repository

import "github.com/tu-usuario/taller-pro/internal/domain/entity"

// StockMovementRepository puerto del libro de movimientos. Append-only:
// no hay Update ni Delete a propósito.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByPart(partID string) ([]*entity.StockMovement, error)
}
