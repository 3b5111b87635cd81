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

const dateLayout = "2006-01-02"

// UseCase registro de órdenes de trabajo: CRUD con código único.
// Las transiciones de estado son libres (cualquiera a cualquiera): el taller
// reabre órdenes cerradas por error y eso es una corrección legítima.
type UseCase struct {
	repo repository.JobOrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.JobOrderRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una orden. Código duplicado -> ErrDuplicate (y nada insertado).
func (uc *UseCase) Create(in dto.CreateJobOrderRequest) (*dto.JobOrderResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.JobOrderStatusOpen
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.JobOrderPriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	if in.ClientID != nil && !domain.ValidID(*in.ClientID) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	openedAt := now
	if in.OpenedAt != "" {
		d, err := time.Parse(dateLayout, in.OpenedAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		openedAt = d
	}
	var expected *time.Time
	if in.ExpectedCloseAt != "" {
		d, err := time.Parse(dateLayout, in.ExpectedCloseAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expected = &d
	}

	order := &entity.JobOrder{
		ID:              uuid.New().String(),
		Code:            in.Code,
		ClientID:        in.ClientID,
		Description:     in.Description,
		OpenedAt:        openedAt,
		ExpectedCloseAt: expected,
		Status:          status,
		Priority:        priority,
		QuotedAmount:    in.QuotedAmount,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toJobOrderResponse(order), nil
}

// GetByID obtiene una orden por ID (sin resumen; ver SummaryUseCase).
func (uc *UseCase) GetByID(id string) (*dto.JobOrderResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toJobOrderResponse(order), nil
}

// Update actualiza campos explícitos. El cambio de estado no se restringe.
func (uc *UseCase) Update(id string, in dto.UpdateJobOrderRequest) (*dto.JobOrderResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if in.Code != nil && *in.Code != order.Code {
		existing, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		order.Code = *in.Code
	}
	if in.ClientID != nil {
		if !domain.ValidID(*in.ClientID) {
			return nil, domain.ErrInvalidInput
		}
		order.ClientID = in.ClientID
	}
	if in.Description != nil {
		order.Description = *in.Description
	}
	if in.ExpectedCloseAt != nil {
		d, err := time.Parse(dateLayout, *in.ExpectedCloseAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.ExpectedCloseAt = &d
	}
	if in.ClosedAt != nil {
		d, err := time.Parse(dateLayout, *in.ClosedAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.ClosedAt = &d
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		order.Priority = *in.Priority
	}
	if in.QuotedAmount != nil {
		if in.QuotedAmount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		order.QuotedAmount = *in.QuotedAmount
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()

	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toJobOrderResponse(order), nil
}

// Delete borra una orden. Se rechaza con ErrConflict mientras existan
// consumos, horas o costos asociados: el historial de costos no se destruye
// en cascada.
func (uc *UseCase) Delete(id string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	n, err := uc.repo.CountDependents(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// List lista órdenes con filtros opcionales por estado y cliente.
func (uc *UseCase) List(filter repository.JobOrderFilter) ([]dto.JobOrderResponse, error) {
	if filter.Status != "" && !entity.ValidStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	if filter.ClientID != "" && !domain.ValidID(filter.ClientID) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toJobOrderResponse(o))
	}
	return out, nil
}
