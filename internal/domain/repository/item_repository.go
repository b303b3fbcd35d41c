package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// ItemRepository define el puerto de lectura del catálogo de ítems.
// El catálogo es inmutable para el motor de transiciones; solo se consulta.
type ItemRepository interface {
	GetByID(id string) (*entity.Item, error)
	List() ([]*entity.Item, error)
}
