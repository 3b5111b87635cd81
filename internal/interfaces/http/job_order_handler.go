package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/application/inventory"
	"github.com/tu-usuario/taller-pro/internal/application/joborder"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// JobOrderHandler maneja las peticiones HTTP para órdenes de trabajo,
// incluidas las operaciones de costeo (consumo, horas, adicionales, reporte).
type JobOrderHandler struct {
	uc      *joborder.UseCase
	summary *joborder.SummaryUseCase
	labor   *joborder.LaborUseCase
	costs   *joborder.CostUseCase
	report  *joborder.ReportUseCase
	stockUC *inventory.StockUseCase
}

// NewJobOrderHandler construye el handler.
func NewJobOrderHandler(
	uc *joborder.UseCase,
	summary *joborder.SummaryUseCase,
	labor *joborder.LaborUseCase,
	costs *joborder.CostUseCase,
	report *joborder.ReportUseCase,
	stockUC *inventory.StockUseCase,
) *JobOrderHandler {
	return &JobOrderHandler{uc: uc, summary: summary, labor: labor, costs: costs, report: report, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear orden de trabajo
// @Tags         job-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.JobOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders [post]
func (h *JobOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobOrderRequest
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
// @Summary      Listar órdenes de trabajo
// @Tags         job-orders
// @Produce      json
// @Param        status     query  string  false  "Filtrar por estado"
// @Param        client_id  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.JobOrderResponse
// @Router       /api/v1/job-orders [get]
func (h *JobOrderHandler) List(c *fiber.Ctx) error {
	filter := repository.JobOrderFilter{
		Status:   c.Query("status"),
		ClientID: c.Query("client_id"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de la orden con el resumen de costos recalculado
// @Tags         job-orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.JobOrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/{id} [get]
func (h *JobOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.summary.GetDetail(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de trabajo
// @Tags         job-orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateJobOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.JobOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/{id} [put]
func (h *JobOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobOrderRequest
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
// @Summary      Borrar orden (solo sin consumos, horas ni costos)
// @Tags         job-orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/{id} [delete]
func (h *JobOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada"})
}

// ConsumePart godoc
// @Summary      Consumir repuesto contra una orden (descuenta stock, precio snapshot)
// @Tags         job-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumePartRequest  true  "Consumo"
// @Success      201   {object}  dto.PartConsumptionResponse
// @Failure      400   {object}  dto.InsufficientStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/consume-part [post]
func (h *JobOrderHandler) ConsumePart(c *fiber.Ctx) error {
	var in dto.ConsumePartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cons, err := h.stockUC.Consume(c.UserContext(), inventory.ConsumeInput{
		JobOrderID: in.JobOrderID,
		PartID:     in.PartID,
		Quantity:   in.Quantity,
		Operator:   in.Operator,
		Note:       in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PartConsumptionResponse{
		ID:         cons.ID,
		JobOrderID: cons.JobOrderID,
		PartID:     cons.PartID,
		Quantity:   cons.Quantity,
		UnitPrice:  cons.UnitPrice,
		TotalPrice: cons.TotalPrice,
		Operator:   cons.Operator,
		Note:       cons.Note,
		CreatedAt:  cons.CreatedAt,
	})
}

// RecordLabor godoc
// @Summary      Registrar horas trabajadas (tarifas snapshot del empleado)
// @Tags         job-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordLaborRequest  true  "Horas"
// @Success      201   {object}  dto.LaborEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/record-labor [post]
func (h *JobOrderHandler) RecordLabor(c *fiber.Ctx) error {
	var in dto.RecordLaborRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.labor.Record(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddCost godoc
// @Summary      Imputar costo adicional a una orden
// @Tags         job-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCostRequest  true  "Costo"
// @Success      201   {object}  dto.AdditionalCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/add-cost [post]
func (h *JobOrderHandler) AddCost(c *fiber.Ctx) error {
	var in dto.AddCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.costs.Add(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del resumen de costos
// @Tags         job-orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/job-orders/{id}/report [get]
func (h *JobOrderHandler) Report(c *fiber.Ctx) error {
	pdf, filename, err := h.report.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderLastModified, time.Now().UTC().Format(time.RFC1123))
	return c.Send(pdf)
}
