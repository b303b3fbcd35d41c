package procurement

import (
	"context"

	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// transiciones: o se aplican todos los efectos (estado + inventario) o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		reqRepo repository.RequisitionRepository,
	) error) error
}
