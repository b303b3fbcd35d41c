package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/procurement"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RequisitionUC  *procurement.RequisitionUseCase
	OrderUC        *procurement.OrderUseCase
	ItemUC         *usecase.ItemUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	InventoryUC    *usecase.InventoryUseCase
	PickListUC     *usecase.PickListUseCase
	PackageUC      *usecase.PackageUseCase
	MetricsEnabled bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Requisiciones de compra
	requisitions := api.Group("/requisitions")
	requisitionHandler := NewRequisitionHandler(deps.RequisitionUC)
	requisitions.Post("/", requisitionHandler.Create)
	requisitions.Get("/", requisitionHandler.List)
	requisitions.Get("/:id", requisitionHandler.GetByID)
	requisitions.Patch("/:id/status", requisitionHandler.Decide)

	// Órdenes de compra
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Catálogo
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)

	// Inventario
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/:id", inventoryHandler.GetByID)

	// Listas de picking
	pickLists := api.Group("/pick-lists")
	pickListHandler := NewPickListHandler(deps.PickListUC)
	pickLists.Get("/", pickListHandler.List)
	pickLists.Get("/:id", pickListHandler.GetByID)
	pickLists.Patch("/:id/status", pickListHandler.UpdateStatus)

	// Paquetes de despacho
	packages := api.Group("/packages")
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Get("/", packageHandler.List)
	packages.Get("/:id", packageHandler.GetByID)

	if deps.MetricsEnabled {
		app.Get("/metrics", MetricsHandler())
	}
}
