package repository

import "github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"

// PackageRepository puerto de lectura de paquetes.
type PackageRepository interface {
	GetByID(id string) (*entity.Package, error)
	List() ([]*entity.Package, error)
}
