package joborder

import (
	"context"

	"github.com/tu-usuario/taller-pro/internal/domain/costing"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// CostReportGenerator genera la representación imprimible (PDF) del resumen
// de costos de una orden. Implementado en infrastructure/pdf.
type CostReportGenerator interface {
	GenerateCostReport(
		ctx context.Context,
		order *entity.JobOrder,
		consumptions []*entity.PartConsumption,
		labor []*entity.LaborEntry,
		costs []*entity.AdditionalCost,
		summary costing.Summary,
	) ([]byte, error)
}
