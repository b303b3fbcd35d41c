package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/masab009/warehouse-api-server-EIS/internal/application/procurement"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/usecase"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// Asegura que TxRunner implementa ambos puertos transaccionales.
var _ procurement.TxRunner = (*TxRunner)(nil)
var _ usecase.PickingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Es la garantía de "todos los efectos o ninguno" del motor de transiciones:
// la inserción de la orden y el incremento de inventario viajan juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invRepo repository.InventoryRepository,
	reqRepo repository.RequisitionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	invRepo := NewInventoryRepository(tx)
	reqRepo := NewRequisitionRepository(tx)

	if err := fn(orderRepo, invRepo, reqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPicking inicia una transacción con el repo de listas de picking.
func (r *TxRunner) RunPicking(ctx context.Context, fn func(pickRepo repository.PickListRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPickListRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
