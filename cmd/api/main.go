package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/taller-pro/internal/application/inventory"
	"github.com/tu-usuario/taller-pro/internal/application/joborder"
	"github.com/tu-usuario/taller-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/taller-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/taller-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/taller-pro/internal/interfaces/http"
	"github.com/tu-usuario/taller-pro/pkg/config"
	"github.com/tu-usuario/taller-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (las operaciones transaccionales usan el TxRunner)
	partRepo := postgres.NewPartRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	jobOrderRepo := postgres.NewJobOrderRepository(pool)
	consumptionRepo := postgres.NewPartConsumptionRepository(pool)
	laborRepo := postgres.NewLaborEntryRepository(pool)
	costRepo := postgres.NewAdditionalCostRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	stockUC := inventory.NewStockUseCase(txRunner, jobOrderRepo)
	partUC := usecase.NewPartUseCase(partRepo, movementRepo)
	jobOrderUC := joborder.NewUseCase(jobOrderRepo)
	summaryUC := joborder.NewSummaryUseCase(jobOrderRepo, consumptionRepo, laborRepo, costRepo)
	laborUC := joborder.NewLaborUseCase(laborRepo, employeeRepo, jobOrderRepo)
	costUC := joborder.NewCostUseCase(costRepo, jobOrderRepo)
	reportUC := joborder.NewReportUseCase(summaryUC, infrapdf.NewMarotoReportGenerator())
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TallerPro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:     partUC,
		StockUC:    stockUC,
		JobOrderUC: jobOrderUC,
		SummaryUC:  summaryUC,
		LaborUC:    laborUC,
		CostUC:     costUC,
		ReportUC:   reportUC,
		EmployeeUC: employeeUC,
		ClientUC:   clientUC,
		SupplierUC: supplierUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
