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

var _ repository.PickListRepository = (*PickListRepo)(nil)

// PickListRepo implementación sobre PostgreSQL (usable con pool o tx).
type PickListRepo struct {
	q Querier
}

// NewPickListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPickListRepository(q Querier) *PickListRepo {
	return &PickListRepo{q: q}
}

// GetByID obtiene una lista de picking. Devuelve nil si no existe.
func (r *PickListRepo) GetByID(id string) (*entity.PickList, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la lista y bloquea la fila (SELECT FOR UPDATE).
func (r *PickListRepo) GetForUpdate(id string) (*entity.PickList, error) {
	return r.get(id, true)
}

func (r *PickListRepo) get(id string, forUpdate bool) (*entity.PickList, error) {
	query := `
		SELECT id, order_id, status, COALESCE(assigned_to, ''), created_at
		FROM pick_lists WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.PickList
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OrderID, &status, &p.AssignedTo, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pick list: %w", err)
	}
	p.Status = entity.PickListStatus(status)
	return &p, nil
}

// UpdateStatus sobreescribe estado y picker asignado.
func (r *PickListRepo) UpdateStatus(id string, status entity.PickListStatus, assignedTo string) error {
	picker := (*string)(nil)
	if assignedTo != "" {
		picker = &assignedTo
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pick_lists SET status = $2, assigned_to = $3 WHERE id = $1`,
		id, string(status), picker)
	if err != nil {
		return fmt.Errorf("update pick list status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista las listas de picking por fecha de creación descendente.
func (r *PickListRepo) List() ([]*entity.PickList, error) {
	query := `
		SELECT id, order_id, status, COALESCE(assigned_to, ''), created_at
		FROM pick_lists ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pick lists: %w", err)
	}
	defer rows.Close()
	var list []*entity.PickList
	for rows.Next() {
		var p entity.PickList
		var status string
		if err := rows.Scan(&p.ID, &p.OrderID, &status, &p.AssignedTo, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pick list: %w", err)
		}
		p.Status = entity.PickListStatus(status)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListItems lista las líneas de una lista de picking.
func (r *PickListRepo) ListItems(pickListID string) ([]*entity.PickListItem, error) {
	query := `
		SELECT id, pick_list_id, item_id, quantity_required, quantity_picked
		FROM pick_list_items WHERE pick_list_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, pickListID)
	if err != nil {
		return nil, fmt.Errorf("list pick list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PickListItem
	for rows.Next() {
		var l entity.PickListItem
		if err := rows.Scan(&l.ID, &l.PickListID, &l.ItemID, &l.QuantityRequired, &l.QuantityPicked); err != nil {
			return nil, fmt.Errorf("scan pick list item: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
