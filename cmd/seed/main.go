// seed puebla la base de datos con un juego de datos de demostración:
// catálogo, bodegas, inventario y documentos en distintos estados del ciclo.
//
// Uso: go run ./cmd/seed
// Es idempotente: usa IDs fijos y ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/masab009/warehouse-api-server-EIS/internal/infrastructure/postgres"
	"github.com/masab009/warehouse-api-server-EIS/pkg/config"
)

var statements = []string{
	`INSERT INTO items (id, name, sku, category, unit_cost, reorder_point, reorder_quantity) VALUES
		('ITEM-001', 'Tornillo hexagonal M8', 'TOR-M8', 'FASTENERS', 0.12, 500, 2000),
		('ITEM-002', 'Caja de cartón 40x40', 'CAJ-4040', 'PACKAGING', 0.85, 200, 1000),
		('ITEM-003', 'Cinta de embalaje 48mm', 'CIN-48', 'PACKAGING', 1.50, 100, 400),
		('ITEM-004', 'Guante de nitrilo talla M', 'GUA-NIT-M', 'SAFETY', 6.20, 50, 150)
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO warehouses (id, name, address, total_capacity, used_capacity) VALUES
		('WH-NORTE', 'Bodega Norte', 'Calle 80 #45-12', 10000, 3200),
		('WH-SUR', 'Bodega Sur', 'Autopista Sur Km 14', 6000, 1100)
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO storage_locations (id, warehouse_id, capacity, used_space) VALUES
		('LOC-N-A1', 'WH-NORTE', 500, 120),
		('LOC-N-A2', 'WH-NORTE', 500, 80),
		('LOC-S-B1', 'WH-SUR', 300, 40)
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO inventory_records (id, item_id, warehouse_id, location_id, quantity_on_hand) VALUES
		('INV-001', 'ITEM-001', 'WH-NORTE', 'LOC-N-A1', 1200),
		('INV-002', 'ITEM-002', 'WH-NORTE', 'LOC-N-A2', 340),
		('INV-003', 'ITEM-002', 'WH-SUR', 'LOC-S-B1', 90),
		('INV-004', 'ITEM-003', 'WH-SUR', 'LOC-S-B1', 75)
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO requisitions (id, item_id, item_name, quantity, status, created_by, justification) VALUES
		('REQ-DEMO-1', 'ITEM-001', 'Tornillo hexagonal M8', 1500, 'PENDING', 'ana.torres', 'stock bajo el punto de reorden'),
		('REQ-DEMO-2', 'ITEM-003', 'Cinta de embalaje 48mm', 200, 'APPROVED', 'carlos.ruiz', 'campaña de fin de mes'),
		('REQ-DEMO-3', 'ITEM-004', 'Guante de nitrilo talla M', 30, 'REJECTED', 'ana.torres', 'duplicada')
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO orders (id, item_id, item_name, quantity, unit_cost, total_cost, status, ordered_date, delivery_date) VALUES
		('ORD-DEMO-1', 'ITEM-001', 'Tornillo hexagonal M8', 2000, 0.11, 220.00, 'ORDERED', now(), now() + interval '7 days'),
		('ORD-DEMO-2', 'ITEM-002', 'Caja de cartón 40x40', 500, 0.82, 410.00, 'IN_TRANSIT', now() - interval '3 days', now() + interval '4 days'),
		('ORD-DEMO-3', 'ITEM-003', 'Cinta de embalaje 48mm', 200, 1.45, 290.00, 'DELIVERED', now() - interval '10 days', now() - interval '3 days')
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO pick_lists (id, order_id, status, assigned_to) VALUES
		('PL-DEMO-1', 'ORD-DEMO-3', 'PENDING', NULL),
		('PL-DEMO-2', 'ORD-DEMO-3', 'ASSIGNED', 'julian.mesa'),
		('PL-DEMO-3', 'ORD-DEMO-3', 'COMPLETED', 'laura.gil')
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO pick_list_items (id, pick_list_id, item_id, quantity_required, quantity_picked) VALUES
		('PLI-DEMO-1', 'PL-DEMO-1', 'ITEM-001', 40, 0),
		('PLI-DEMO-2', 'PL-DEMO-2', 'ITEM-002', 12, 5),
		('PLI-DEMO-3', 'PL-DEMO-3', 'ITEM-003', 8, 8)
	ON CONFLICT (id) DO NOTHING`,

	`INSERT INTO packages (id, order_id, pick_list_id, package_type, status) VALUES
		('PKG-DEMO-1', 'ORD-DEMO-3', 'PL-DEMO-3', 'BOX', 'PACKING'),
		('PKG-DEMO-2', 'ORD-DEMO-3', 'PL-DEMO-3', 'PALLET', 'LABELED')
	ON CONFLICT (id) DO NOTHING`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for i, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "sentencia %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}
	fmt.Println("Datos de demostración cargados.")
}
