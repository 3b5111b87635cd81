package joborder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// CostUseCase imputa costos adicionales (transporte, servicios externos...)
// a una orden de trabajo.
type CostUseCase struct {
	costRepo  repository.AdditionalCostRepository
	orderRepo repository.JobOrderRepository
}

// NewCostUseCase construye el caso de uso.
func NewCostUseCase(costRepo repository.AdditionalCostRepository, orderRepo repository.JobOrderRepository) *CostUseCase {
	return &CostUseCase{costRepo: costRepo, orderRepo: orderRepo}
}

// Add registra un costo adicional sobre una orden existente.
func (uc *CostUseCase) Add(in dto.AddCostRequest) (*dto.AdditionalCostResponse, error) {
	if !domain.ValidID(in.JobOrderID) || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(in.JobOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		d, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = d
	}

	cost := &entity.AdditionalCost{
		ID:              uuid.New().String(),
		JobOrderID:      in.JobOrderID,
		Description:     in.Description,
		Amount:          in.Amount,
		Date:            date,
		Type:            in.Type,
		SupplierInvoice: in.SupplierInvoice,
		Note:            in.Note,
		CreatedAt:       time.Now(),
	}
	if err := uc.costRepo.Create(cost); err != nil {
		return nil, err
	}
	resp := toAdditionalCostResponse(cost)
	return &resp, nil
}
