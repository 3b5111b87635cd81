package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/application/inventory"
	"github.com/tu-usuario/taller-pro/internal/application/usecase"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// PartHandler maneja las peticiones HTTP para repuestos.
type PartHandler struct {
	uc      *usecase.PartUseCase
	stockUC *inventory.StockUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *usecase.PartUseCase, stockUC *inventory.StockUseCase) *PartHandler {
	return &PartHandler{uc: uc, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear repuesto
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar repuestos
// @Tags         parts
// @Produce      json
// @Param        search     query  string  false  "Busca en código y descripción"
// @Param        low_stock  query  bool    false  "Solo repuestos en o bajo el stock mínimo"
// @Success      200  {array}  dto.PartResponse
// @Router       /api/v1/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	filter := repository.PartFilter{
		Search:   c.Query("search"),
		LowStock: c.QueryBool("low_stock"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         parts
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar repuesto (la cantidad no se toca por aquí)
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdatePartRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar repuesto
// @Tags         parts
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "repuesto eliminado"})
}

// Movements godoc
// @Summary      Storico de movimientos del repuesto
// @Tags         parts
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {array}  dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/parts/{id}/movements [get]
func (h *PartHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.Movements(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockIn godoc
// @Summary      Carga manual de stock
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "Carga"
// @Success      200   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/parts/stock-in [post]
func (h *PartHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.stockUC.StockIn(c.UserContext(), inventory.StockInInput{
		PartID:   in.PartID,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Operator: in.Operator,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockInResponse{
		Message:          "carga registrada",
		PreviousQuantity: result.PreviousQuantity,
		NewQuantity:      result.NewQuantity,
	})
}
