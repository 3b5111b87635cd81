package joborder

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/costing"
)

// ReportUseCase genera el PDF del resumen de costos de una orden.
// Reutiliza el mismo fetch del agregador: el PDF muestra exactamente los
// números que devuelve el detalle JSON.
type ReportUseCase struct {
	summary   *SummaryUseCase
	generator CostReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(summary *SummaryUseCase, generator CostReportGenerator) *ReportUseCase {
	return &ReportUseCase{summary: summary, generator: generator}
}

// Download genera el PDF y el nombre de archivo sugerido.
// Falla con ErrNotFound si la orden no existe.
func (uc *ReportUseCase) Download(ctx context.Context, jobOrderID string) ([]byte, string, error) {
	order, consumptions, labor, costs, err := uc.summary.fetch(jobOrderID)
	if err != nil {
		return nil, "", err
	}
	s := costing.Summarize(order.QuotedAmount, consumptions, labor, costs)

	pdf, err := uc.generator.GenerateCostReport(ctx, order, consumptions, labor, costs, s)
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte de costos: %w", err)
	}
	return pdf, fmt.Sprintf("orden-%s-costos.pdf", order.Code), nil
}
