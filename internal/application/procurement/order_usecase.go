package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// OrderUseCase crea órdenes de compra y aplica cambios de estado.
// La creación es la única operación con efecto compuesto: inserta la orden y
// suma la cantidad al registro de inventario del ítem dentro de la misma
// transacción, con la fila de inventario bloqueada (SELECT FOR UPDATE).
type OrderUseCase struct {
	txRunner  TxRunner
	itemRepo  repository.ItemRepository
	orderRepo repository.OrderRepository
	strict    bool
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, orderRepo repository.OrderRepository, strict bool) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, itemRepo: itemRepo, orderRepo: orderRepo, strict: strict}
}

// Create valida la entrada, inserta la orden en ORDERED y aplica el
// incremento de inventario de forma atómica. TotalCost = Quantity × UnitCost
// se congela aquí; la fecha de entrega usa el plazo fijo de 7 días.
//
// El registro de inventario a incrementar se resuelve por ítem: con
// WarehouseID vacío toma la primera coincidencia (el comportamiento
// histórico), con WarehouseID se desambigua. Si el ítem no tiene registro
// de inventario el incremento se omite, como un UPDATE que afecta cero
// filas.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	itemName := in.ItemName
	if itemName == "" {
		itemName = item.Name
	}

	now := time.Now()
	order := &entity.Order{
		ID:           "ORD-BUY-" + uuid.New().String(),
		ItemID:       in.ItemID,
		ItemName:     itemName,
		Quantity:     in.Quantity,
		UnitCost:     in.UnitCost,
		TotalCost:    in.UnitCost.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:       entity.OrderOrdered,
		OrderedDate:  now,
		DeliveryDate: now.Add(entity.LeadTime),
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
		_ repository.RequisitionRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		rec, err := invRepo.GetByItemForUpdate(in.ItemID, in.WarehouseID)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		return invRepo.UpdateQuantity(rec.ID, rec.QuantityOnHand+in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Transition aplica un estado destino a una orden existente. El cambio de
// estado no toca inventario: el incremento ocurrió al crear la orden.
// Repetir el estado vigente es un éxito idempotente; en modo estricto un
// salto fuera del grafo devuelve ErrIllegalTransition.
func (uc *OrderUseCase) Transition(ctx context.Context, id, targetStatus string) (*dto.OrderResponse, error) {
	if targetStatus == "" {
		return nil, domain.ErrInvalidInput
	}
	target, ok := entity.ParseOrderStatus(targetStatus)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	var out *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.InventoryRepository,
		_ repository.RequisitionRepository,
	) error {
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == target {
			out = order
			return nil
		}
		if uc.strict && !order.Status.CanTransition(target) {
			return domain.ErrIllegalTransition
		}
		if err := orderRepo.UpdateStatus(id, target); err != nil {
			return err
		}
		order.Status = target
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(out), nil
}

// GetByID obtiene una orden por ID. Devuelve nil si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes por fecha de compra descendente.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		ItemID:       o.ItemID,
		ItemName:     o.ItemName,
		Quantity:     o.Quantity,
		UnitCost:     o.UnitCost,
		TotalCost:    o.TotalCost,
		Status:       string(o.Status),
		OrderedDate:  o.OrderedDate,
		DeliveryDate: o.DeliveryDate,
	}
}
