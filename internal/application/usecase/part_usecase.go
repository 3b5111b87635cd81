package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// PartUseCase CRUD de repuestos. El stock NO se edita por aquí: la cantidad
// solo cambia vía el motor de inventario (carga manual o consumo por orden).
type PartUseCase struct {
	repo         repository.PartRepository
	movementRepo repository.StockMovementRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository, movementRepo repository.StockMovementRepository) *PartUseCase {
	return &PartUseCase{repo: repo, movementRepo: movementRepo}
}

// Create da de alta un repuesto. Código duplicado -> ErrDuplicate.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.Code == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierID != nil && !domain.ValidID(*in.SupplierID) {
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
	part := &entity.Part{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Description:   in.Description,
		Quantity:      in.Quantity,
		MinQuantity:   in.MinQuantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		SupplierID:    in.SupplierID,
		Location:      in.Location,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID obtiene un repuesto.
func (uc *PartUseCase) GetByID(id string) (*dto.PartResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toPartResponse(part), nil
}

// Update modifica datos maestros del repuesto. La cantidad no se toca aquí.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}

	if in.Code != nil && *in.Code != part.Code {
		existing, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		part.Code = *in.Code
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.MinQuantity = *in.MinQuantity
	}
	if in.PurchasePrice != nil {
		part.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		part.SalePrice = *in.SalePrice
	}
	if in.SupplierID != nil {
		if !domain.ValidID(*in.SupplierID) {
			return nil, domain.ErrInvalidInput
		}
		part.SupplierID = in.SupplierID
	}
	if in.Location != nil {
		part.Location = *in.Location
	}
	if in.Notes != nil {
		part.Notes = *in.Notes
	}
	part.UpdatedAt = time.Now()

	if err := uc.repo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete borra un repuesto. Si tiene movimientos o consumos asociados el
// repositorio devuelve ErrConflict (violación de FK).
func (uc *PartUseCase) Delete(id string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidInput
	}
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista repuestos con búsqueda por texto y filtro de stock bajo.
func (uc *PartUseCase) List(filter repository.PartFilter) ([]dto.PartResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPartResponse(p))
	}
	return out, nil
}

// Movements devuelve el storico completo del repuesto, más reciente primero.
func (uc *PartUseCase) Movements(partID string) ([]dto.StockMovementResponse, error) {
	if !domain.ValidID(partID) {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.repo.GetByID(partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByPart(partID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:                  m.ID,
			PartID:              m.PartID,
			Type:                m.Type,
			Quantity:            m.Quantity,
			QuantityBefore:      m.QuantityBefore,
			QuantityAfter:       m.QuantityAfter,
			JobOrderID:          m.JobOrderID,
			JobOrderCode:        m.JobOrderCode,
			JobOrderDescription: m.JobOrderDescription,
			Reason:              m.Reason,
			Operator:            m.Operator,
			CreatedAt:           m.CreatedAt,
		})
	}
	return out, nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:            p.ID,
		Code:          p.Code,
		Description:   p.Description,
		Quantity:      p.Quantity,
		MinQuantity:   p.MinQuantity,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		Location:      p.Location,
		Notes:         p.Notes,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
