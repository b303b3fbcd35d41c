package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación de lectura de paquetes sobre PostgreSQL.
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

// GetByID obtiene un paquete. Devuelve nil si no existe.
func (r *PackageRepo) GetByID(id string) (*entity.Package, error) {
	query := `
		SELECT id, order_id, pick_list_id, package_type, status, created_at
		FROM packages WHERE id = $1`
	var p entity.Package
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OrderID, &p.PickListID, &p.PackageType, &status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	p.Status = entity.PackageStatus(status)
	return &p, nil
}

// List lista paquetes por fecha de creación descendente.
func (r *PackageRepo) List() ([]*entity.Package, error) {
	query := `
		SELECT id, order_id, pick_list_id, package_type, status, created_at
		FROM packages ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Package
	for rows.Next() {
		var p entity.Package
		var status string
		if err := rows.Scan(&p.ID, &p.OrderID, &p.PickListID, &p.PackageType, &status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		p.Status = entity.PackageStatus(status)
		list = append(list, &p)
	}
	return list, rows.Err()
}
