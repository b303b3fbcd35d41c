package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// OrderRepository puerto sobre órdenes de compra.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetForUpdate(id string) (*entity.Order, error)
	UpdateStatus(id string, status entity.OrderStatus) error
	List(limit, offset int) ([]*entity.Order, error)
}
