package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// EmployeeUseCase CRUD del registro maestro de empleados. Las tarifas que se
// guardan aquí alimentan los snapshots del registro de horas; cambiarlas no
// reescribe entradas pasadas.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create da de alta un empleado (activo por defecto).
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	// Una tarifa negativa invertiría el signo de los snapshots de horas
	if in.HourlyCost.LessThan(decimal.Zero) || in.ClientRate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Code:       in.Code,
		HourlyCost: in.HourlyCost,
		ClientRate: in.ClientRate,
		Role:       in.Role,
		Active:     active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update modifica un empleado. Desactivar (active=false) es la baja lógica:
// deja de aparecer en los listados activos pero su historial de horas queda.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	if in.FirstName != nil {
		employee.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		employee.LastName = *in.LastName
	}
	if in.Code != nil {
		employee.Code = *in.Code
	}
	if in.HourlyCost != nil {
		if in.HourlyCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		employee.HourlyCost = *in.HourlyCost
	}
	if in.ClientRate != nil {
		if in.ClientRate.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		employee.ClientRate = *in.ClientRate
	}
	if in.Role != nil {
		employee.Role = *in.Role
	}
	if in.Active != nil {
		employee.Active = *in.Active
	}
	employee.UpdatedAt = time.Now()

	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete borra un empleado sin registros de horas; con historial el
// repositorio devuelve ErrConflict (violación de FK).
func (uc *EmployeeUseCase) Delete(id string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista empleados; con activeOnly filtra los activos.
func (uc *EmployeeUseCase) List(activeOnly *bool) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Code:       e.Code,
		HourlyCost: e.HourlyCost,
		ClientRate: e.ClientRate,
		Role:       e.Role,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
