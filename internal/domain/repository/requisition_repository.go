package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// RequisitionRepository puerto sobre requisiciones de compra.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar decisiones
// concurrentes sobre la misma requisición.
type RequisitionRepository interface {
	Create(req *entity.Requisition) error
	GetByID(id string) (*entity.Requisition, error)
	GetForUpdate(id string) (*entity.Requisition, error)
	UpdateStatus(id string, status entity.RequisitionStatus) error
	List(limit, offset int) ([]*entity.Requisition, error)
}
