package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/costing"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// StockUseCase es el motor de inventario: carga manual y consumo por orden de
// trabajo, de forma transaccional con bloqueo de fila (SELECT FOR UPDATE).
// Cada mutación deja exactamente una entrada en el libro de movimientos con
// el antes/después, y la cantidad del repuesto nunca queda negativa.
type StockUseCase struct {
	txRunner     TxRunner
	jobOrderRepo repository.JobOrderRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, jobOrderRepo repository.JobOrderRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, jobOrderRepo: jobOrderRepo}
}

// StockInInput entrada para una carga manual de almacén.
type StockInInput struct {
	PartID   string
	Quantity int64
	Reason   string
	Operator string
}

// StockInResult cantidades antes y después de la carga.
type StockInResult struct {
	PreviousQuantity int64
	NewQuantity      int64
}

// StockIn suma cantidad al stock de un repuesto y registra el movimiento
// (tipo stock_in) con el antes/después. Falla con ErrNotFound si el repuesto
// no existe y con ErrInvalidInput si el ID no es un UUID o la cantidad no es
// positiva.
func (uc *StockUseCase) StockIn(ctx context.Context, input StockInInput) (*StockInResult, error) {
	if !domain.ValidID(input.PartID) || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var result StockInResult

	err := uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
		_ repository.PartConsumptionRepository,
	) error {
		// Bloquea la fila del repuesto para la secuencia leer-sumar-escribir
		part, err := partRepo.GetForUpdate(input.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}

		before := part.Quantity
		after := before + input.Quantity
		if err := partRepo.UpdateQuantity(part.ID, after); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			PartID:         part.ID,
			Type:           entity.MovementTypeStockIn,
			Quantity:       input.Quantity,
			QuantityBefore: before,
			QuantityAfter:  after,
			Reason:         input.Reason,
			Operator:       input.Operator,
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = StockInResult{PreviousQuantity: before, NewQuantity: after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ConsumeInput entrada para un consumo de repuesto contra una orden.
type ConsumeInput struct {
	JobOrderID string
	PartID     string
	Quantity   int64
	Operator   string
	Note       string
}

// Consume descuenta stock contra una orden de trabajo. Dentro de la misma
// transacción: bloquea la fila del repuesto, verifica disponibilidad, resta
// la cantidad, inserta el consumo con el precio de compra actual copiado
// (snapshot) y registra el movimiento espejo en el libro.
//
// Si la cantidad solicitada supera la disponible retorna
// *domain.InsufficientStockError sin mutar nada. Dos consumos concurrentes
// sobre el mismo repuesto se serializan por el bloqueo de fila: no pueden
// pasar ambos la verificación con una lectura obsoleta.
func (uc *StockUseCase) Consume(ctx context.Context, input ConsumeInput) (*entity.PartConsumption, error) {
	if !domain.ValidID(input.PartID) || !domain.ValidID(input.JobOrderID) || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// La orden debe existir antes de tocar el stock
	order, err := uc.jobOrderRepo.GetByID(input.JobOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created *entity.PartConsumption

	err = uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
		consRepo repository.PartConsumptionRepository,
	) error {
		part, err := partRepo.GetForUpdate(input.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		if part.Quantity < input.Quantity {
			return &domain.InsufficientStockError{
				Available: part.Quantity,
				Requested: input.Quantity,
			}
		}

		before := part.Quantity
		after := before - input.Quantity
		if err := partRepo.UpdateQuantity(part.ID, after); err != nil {
			return err
		}

		cons := &entity.PartConsumption{
			ID:         uuid.New().String(),
			JobOrderID: input.JobOrderID,
			PartID:     part.ID,
			Quantity:   input.Quantity,
			UnitPrice:  part.PurchasePrice, // snapshot: cambios futuros del precio no afectan esta fila
			TotalPrice: costing.ConsumptionTotal(input.Quantity, part.PurchasePrice),
			Operator:   input.Operator,
			Note:       input.Note,
			CreatedAt:  now,
		}
		if err := consRepo.Create(cons); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			PartID:         part.ID,
			Type:           entity.MovementTypeConsumption,
			Quantity:       -input.Quantity,
			QuantityBefore: before,
			QuantityAfter:  after,
			JobOrderID:     &input.JobOrderID,
			Reason:         input.Note,
			Operator:       input.Operator,
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		created = cons
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
