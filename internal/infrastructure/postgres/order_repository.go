package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/masab009/warehouse-api-server-EIS/internal/domain"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden nueva con su snapshot de nombre y costos.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, item_id, item_name, quantity, unit_cost, total_cost, status, ordered_date, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ItemID, order.ItemName, order.Quantity,
		order.UnitCost, order.TotalCost, string(order.Status),
		order.OrderedDate, order.DeliveryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.get(id, true)
}

func (r *OrderRepo) get(id string, forUpdate bool) (*entity.Order, error) {
	query := `
		SELECT id, item_id, item_name, quantity, unit_cost, total_cost, status, ordered_date, delivery_date
		FROM orders WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var o entity.Order
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ItemID, &o.ItemName, &o.Quantity, &o.UnitCost, &o.TotalCost,
		&status, &o.OrderedDate, &o.DeliveryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// UpdateStatus sobreescribe únicamente el estado.
func (r *OrderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes por fecha de compra descendente.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, item_id, item_name, quantity, unit_cost, total_cost, status, ordered_date, delivery_date
		FROM orders ORDER BY ordered_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.ItemID, &o.ItemName, &o.Quantity, &o.UnitCost,
			&o.TotalCost, &status, &o.OrderedDate, &o.DeliveryDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	return list, rows.Err()
}
