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

var _ repository.RequisitionRepository = (*RequisitionRepo)(nil)

// RequisitionRepo implementación sobre PostgreSQL (usable con pool o tx).
type RequisitionRepo struct {
	q Querier
}

// NewRequisitionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequisitionRepository(q Querier) *RequisitionRepo {
	return &RequisitionRepo{q: q}
}

// Create persiste una requisición nueva.
func (r *RequisitionRepo) Create(req *entity.Requisition) error {
	query := `
		INSERT INTO requisitions (id, item_id, item_name, quantity, status, created_by, justification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.ItemID, req.ItemName, req.Quantity, string(req.Status),
		req.CreatedBy, req.Justification, req.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert requisition: %w", err)
	}
	return nil
}

// GetByID obtiene una requisición por ID. Devuelve nil si no existe.
func (r *RequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la requisición y bloquea la fila (SELECT FOR UPDATE)
// para serializar decisiones concurrentes sobre el mismo id.
func (r *RequisitionRepo) GetForUpdate(id string) (*entity.Requisition, error) {
	return r.get(id, true)
}

func (r *RequisitionRepo) get(id string, forUpdate bool) (*entity.Requisition, error) {
	query := `
		SELECT id, item_id, item_name, quantity, status, created_by, justification, created_at
		FROM requisitions WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var req entity.Requisition
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.ItemID, &req.ItemName, &req.Quantity, &status,
		&req.CreatedBy, &req.Justification, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requisition: %w", err)
	}
	req.Status = entity.RequisitionStatus(status)
	return &req, nil
}

// UpdateStatus sobreescribe únicamente el estado.
func (r *RequisitionRepo) UpdateStatus(id string, status entity.RequisitionStatus) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE requisitions SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update requisition status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista requisiciones por fecha de creación descendente.
func (r *RequisitionRepo) List(limit, offset int) ([]*entity.Requisition, error) {
	query := `
		SELECT id, item_id, item_name, quantity, status, created_by, justification, created_at
		FROM requisitions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requisitions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requisition
	for rows.Next() {
		var req entity.Requisition
		var status string
		if err := rows.Scan(&req.ID, &req.ItemID, &req.ItemName, &req.Quantity, &status,
			&req.CreatedBy, &req.Justification, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan requisition: %w", err)
		}
		req.Status = entity.RequisitionStatus(status)
		list = append(list, &req)
	}
	return list, rows.Err()
}
