package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/masab009/warehouse-api-server-EIS/internal/application/procurement"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/usecase"
	"github.com/masab009/warehouse-api-server-EIS/internal/infrastructure/postgres"
	httpRouter "github.com/masab009/warehouse-api-server-EIS/internal/interfaces/http"
	"github.com/masab009/warehouse-api-server-EIS/pkg/config"
	"github.com/masab009/warehouse-api-server-EIS/pkg/logger"
)

// runMigrations aplica las migraciones goose pendientes antes de servir tráfico.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

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
		Bool("strict_transitions", cfg.Engine.Strict).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	requisitionRepo := postgres.NewRequisitionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	pickListRepo := postgres.NewPickListRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	requisitionUC := procurement.NewRequisitionUseCase(txRunner, itemRepo, requisitionRepo, cfg.Engine.Strict)
	orderUC := procurement.NewOrderUseCase(txRunner, itemRepo, orderRepo, cfg.Engine.Strict)
	itemUC := usecase.NewItemUseCase(itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	pickListUC := usecase.NewPickListUseCase(txRunner, pickListRepo, cfg.Engine.Strict)
	packageUC := usecase.NewPackageUseCase(packageRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RequisitionUC:  requisitionUC,
		OrderUC:        orderUC,
		ItemUC:         itemUC,
		WarehouseUC:    warehouseUC,
		InventoryUC:    inventoryUC,
		PickListUC:     pickListUC,
		PackageUC:      packageUC,
		MetricsEnabled: cfg.Metrics.Enabled,
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
