package joborder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/costing"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// LaborUseCase registra horas trabajadas con snapshot de tarifas: el costo
// horario y la tarifa del cliente se copian del empleado al crear la entrada
// y no se recalculan nunca (exactitud histórica).
type LaborUseCase struct {
	laborRepo    repository.LaborEntryRepository
	employeeRepo repository.EmployeeRepository
	orderRepo    repository.JobOrderRepository
}

// NewLaborUseCase construye el caso de uso.
func NewLaborUseCase(
	laborRepo repository.LaborEntryRepository,
	employeeRepo repository.EmployeeRepository,
	orderRepo repository.JobOrderRepository,
) *LaborUseCase {
	return &LaborUseCase{laborRepo: laborRepo, employeeRepo: employeeRepo, orderRepo: orderRepo}
}

// Record crea la entrada de horas. Falla con ErrNotFound si el empleado o la
// orden no existen; las horas no pueden ser negativas y al menos una debe ser
// mayor que cero.
func (uc *LaborUseCase) Record(in dto.RecordLaborRequest) (*dto.LaborEntryResponse, error) {
	if !domain.ValidID(in.JobOrderID) || !domain.ValidID(in.EmployeeID) {
		return nil, domain.ErrInvalidInput
	}
	if in.OrdinaryHours.LessThan(decimal.Zero) || in.OvertimeHours.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.OrdinaryHours.Add(in.OvertimeHours).LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
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

	entry := &entity.LaborEntry{
		ID:            uuid.New().String(),
		JobOrderID:    in.JobOrderID,
		EmployeeID:    employee.ID,
		Date:          date,
		OrdinaryHours: in.OrdinaryHours,
		OvertimeHours: in.OvertimeHours,
		// Snapshot: estos dos campos quedan congelados aunque el empleado
		// cambie de tarifa mañana
		HourlyCost: employee.HourlyCost,
		ClientRate: employee.ClientRate,
		TotalCost:  costing.LaborTotal(in.OrdinaryHours, in.OvertimeHours, employee.HourlyCost),
		Activity:   in.Activity,
		Phase:      in.Phase,
		CreatedAt:  time.Now(),
	}
	if err := uc.laborRepo.Create(entry); err != nil {
		return nil, err
	}
	entry.EmployeeName = employee.FullName()
	resp := toLaborEntryResponse(entry)
	return &resp, nil
}
