package joborder

import (
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

func toJobOrderResponse(o *entity.JobOrder) *dto.JobOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.JobOrderResponse{
		ID:              o.ID,
		Code:            o.Code,
		ClientID:        o.ClientID,
		ClientName:      o.ClientName,
		Description:     o.Description,
		OpenedAt:        o.OpenedAt,
		ExpectedCloseAt: o.ExpectedCloseAt,
		ClosedAt:        o.ClosedAt,
		Status:          o.Status,
		Priority:        o.Priority,
		QuotedAmount:    o.QuotedAmount,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toConsumptionResponse(c *entity.PartConsumption) dto.PartConsumptionResponse {
	return dto.PartConsumptionResponse{
		ID:              c.ID,
		JobOrderID:      c.JobOrderID,
		PartID:          c.PartID,
		PartCode:        c.PartCode,
		PartDescription: c.PartDescription,
		Quantity:        c.Quantity,
		UnitPrice:       c.UnitPrice,
		TotalPrice:      c.TotalPrice,
		Operator:        c.Operator,
		Note:            c.Note,
		CreatedAt:       c.CreatedAt,
	}
}

func toLaborEntryResponse(l *entity.LaborEntry) dto.LaborEntryResponse {
	return dto.LaborEntryResponse{
		ID:            l.ID,
		JobOrderID:    l.JobOrderID,
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeName,
		Date:          l.Date,
		OrdinaryHours: l.OrdinaryHours,
		OvertimeHours: l.OvertimeHours,
		HourlyCost:    l.HourlyCost,
		ClientRate:    l.ClientRate,
		TotalCost:     l.TotalCost,
		Activity:      l.Activity,
		Phase:         l.Phase,
		CreatedAt:     l.CreatedAt,
	}
}

func toAdditionalCostResponse(c *entity.AdditionalCost) dto.AdditionalCostResponse {
	return dto.AdditionalCostResponse{
		ID:              c.ID,
		JobOrderID:      c.JobOrderID,
		Description:     c.Description,
		Amount:          c.Amount,
		Date:            c.Date,
		Type:            c.Type,
		SupplierInvoice: c.SupplierInvoice,
		Note:            c.Note,
		CreatedAt:       c.CreatedAt,
	}
}
