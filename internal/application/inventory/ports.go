package inventory

import (
	"context"

	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la secuencia
// leer-verificar-escribir del motor de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
		consRepo repository.PartConsumptionRepository,
	) error) error
}
