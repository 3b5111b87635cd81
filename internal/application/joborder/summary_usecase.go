package joborder

import (
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/costing"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// SummaryUseCase es el agregador de costos: arma el detalle completo de una
// orden recalculando el resumen desde las filas actuales en cada llamada.
// No mantiene ni confía en ninguna columna derivada; sin escrituras
// intermedias, dos llamadas devuelven exactamente lo mismo.
type SummaryUseCase struct {
	orderRepo repository.JobOrderRepository
	consRepo  repository.PartConsumptionRepository
	laborRepo repository.LaborEntryRepository
	costRepo  repository.AdditionalCostRepository
}

// NewSummaryUseCase construye el agregador.
func NewSummaryUseCase(
	orderRepo repository.JobOrderRepository,
	consRepo repository.PartConsumptionRepository,
	laborRepo repository.LaborEntryRepository,
	costRepo repository.AdditionalCostRepository,
) *SummaryUseCase {
	return &SummaryUseCase{orderRepo: orderRepo, consRepo: consRepo, laborRepo: laborRepo, costRepo: costRepo}
}

// GetDetail devuelve la orden, sus tres listas de detalle y los seis números
// calculados. Falla con ErrNotFound si la orden no existe.
func (uc *SummaryUseCase) GetDetail(jobOrderID string) (*dto.JobOrderDetailResponse, error) {
	order, consumptions, labor, costs, err := uc.fetch(jobOrderID)
	if err != nil {
		return nil, err
	}

	detail := &dto.JobOrderDetailResponse{
		JobOrderResponse: *toJobOrderResponse(order),
		Consumptions:     make([]dto.PartConsumptionResponse, 0, len(consumptions)),
		LaborEntries:     make([]dto.LaborEntryResponse, 0, len(labor)),
		AdditionalCosts:  make([]dto.AdditionalCostResponse, 0, len(costs)),
		Summary:          costing.Summarize(order.QuotedAmount, consumptions, labor, costs),
	}
	for _, c := range consumptions {
		detail.Consumptions = append(detail.Consumptions, toConsumptionResponse(c))
	}
	for _, l := range labor {
		detail.LaborEntries = append(detail.LaborEntries, toLaborEntryResponse(l))
	}
	for _, c := range costs {
		detail.AdditionalCosts = append(detail.AdditionalCosts, toAdditionalCostResponse(c))
	}
	return detail, nil
}

// fetch trae todas las filas de la orden; compartido con el reporte PDF.
func (uc *SummaryUseCase) fetch(jobOrderID string) (
	*entity.JobOrder,
	[]*entity.PartConsumption,
	[]*entity.LaborEntry,
	[]*entity.AdditionalCost,
	error,
) {
	if !domain.ValidID(jobOrderID) {
		return nil, nil, nil, nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(jobOrderID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if order == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	consumptions, err := uc.consRepo.ListByJobOrder(jobOrderID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	labor, err := uc.laborRepo.ListByJobOrder(jobOrderID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	costs, err := uc.costRepo.ListByJobOrder(jobOrderID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return order, consumptions, labor, costs, nil
}
