package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// PickListRepository puerto sobre listas de picking y sus líneas.
type PickListRepository interface {
	GetByID(id string) (*entity.PickList, error)
	GetForUpdate(id string) (*entity.PickList, error)
	UpdateStatus(id string, status entity.PickListStatus, assignedTo string) error
	List() ([]*entity.PickList, error)
	ListItems(pickListID string) ([]*entity.PickListItem, error)
}
