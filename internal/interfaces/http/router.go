package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/application/inventory"
	"github.com/tu-usuario/taller-pro/internal/application/joborder"
	"github.com/tu-usuario/taller-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartUC     *usecase.PartUseCase
	StockUC    *inventory.StockUseCase
	JobOrderUC *joborder.UseCase
	SummaryUC  *joborder.SummaryUseCase
	LaborUC    *joborder.LaborUseCase
	CostUC     *joborder.CostUseCase
	ReportUC   *joborder.ReportUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ClientUC   *usecase.ClientUseCase
	SupplierUC *usecase.SupplierUseCase
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Timestamp: time.Now().UTC().Format(time.RFC3339)})
	})

	api := app.Group("/api/v1")

	// Repuestos e inventario
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC, deps.StockUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Post("/stock-in", partHandler.StockIn)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)
	parts.Get("/:id/movements", partHandler.Movements)

	// Órdenes de trabajo y costeo
	orders := api.Group("/job-orders")
	orderHandler := NewJobOrderHandler(
		deps.JobOrderUC, deps.SummaryUC, deps.LaborUC, deps.CostUC, deps.ReportUC, deps.StockUC,
	)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Post("/consume-part", orderHandler.ConsumePart)
	orders.Post("/record-labor", orderHandler.RecordLabor)
	orders.Post("/add-cost", orderHandler.AddCost)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/report", orderHandler.Report)

	// Datos maestros
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Fallback estructurado para rutas desconocidas
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "ruta no encontrada",
		})
	})
}
