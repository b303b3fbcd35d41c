package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// RequisitionUseCase crea requisiciones y decide su aprobación o rechazo.
//
// Con Strict=true la decisión valida la tabla de transiciones (solo
// PENDING -> APPROVED/REJECTED); con Strict=false se conserva la laxitud
// histórica: cualquier valor del enum sobreescribe el estado
// actual. En ambos modos repetir el estado vigente es un éxito idempotente
// y un valor fuera del enum se rechaza en la frontera.
type RequisitionUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	reqRepo  repository.RequisitionRepository
	strict   bool
}

// NewRequisitionUseCase construye el caso de uso.
func NewRequisitionUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, reqRepo repository.RequisitionRepository, strict bool) *RequisitionUseCase {
	return &RequisitionUseCase{txRunner: txRunner, itemRepo: itemRepo, reqRepo: reqRepo, strict: strict}
}

// Create registra una requisición nueva en PENDING. El nombre del ítem se
// congela desde el catálogo al momento de crearla.
func (uc *RequisitionUseCase) Create(ctx context.Context, in dto.CreateRequisitionRequest) (*dto.RequisitionResponse, error) {
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	req := &entity.Requisition{
		ID:            "REQ-" + uuid.New().String(),
		ItemID:        in.ItemID,
		ItemName:      item.Name,
		Quantity:      in.Quantity,
		Status:        entity.RequisitionPending,
		CreatedBy:     in.CreatedBy,
		Justification: in.Justification,
		CreatedAt:     time.Now(),
	}
	if err := uc.reqRepo.Create(req); err != nil {
		return nil, err
	}
	return toRequisitionResponse(req), nil
}

// Decide aplica APPROVED o REJECTED a una requisición. PENDING nunca es un
// destino válido (es el estado inicial implícito). La fila se bloquea con
// SELECT FOR UPDATE dentro de la transacción para serializar decisiones
// concurrentes sobre el mismo id.
func (uc *RequisitionUseCase) Decide(ctx context.Context, id, targetStatus string) (*dto.RequisitionResponse, error) {
	if targetStatus == "" {
		return nil, domain.ErrInvalidInput
	}
	target, ok := entity.ParseRequisitionStatus(targetStatus)
	if !ok || target == entity.RequisitionPending {
		return nil, domain.ErrInvalidStatus
	}

	var out *entity.Requisition
	err := uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		_ repository.InventoryRepository,
		reqRepo repository.RequisitionRepository,
	) error {
		req, err := reqRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status == target {
			// Repetición de la misma decisión: éxito sin efectos.
			out = req
			return nil
		}
		if uc.strict && !req.Status.CanTransition(target) {
			return domain.ErrIllegalTransition
		}
		if err := reqRepo.UpdateStatus(id, target); err != nil {
			return err
		}
		req.Status = target
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRequisitionResponse(out), nil
}

// GetByID obtiene una requisición por ID. Devuelve nil si no existe.
func (uc *RequisitionUseCase) GetByID(ctx context.Context, id string) (*dto.RequisitionResponse, error) {
	req, err := uc.reqRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	return toRequisitionResponse(req), nil
}

// List lista requisiciones con paginación (más recientes primero).
func (uc *RequisitionUseCase) List(ctx context.Context, limit, offset int) (*dto.RequisitionListResponse, error) {
	list, err := uc.reqRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequisitionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRequisitionResponse(r))
	}
	return &dto.RequisitionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toRequisitionResponse(r *entity.Requisition) *dto.RequisitionResponse {
	return &dto.RequisitionResponse{
		ID:            r.ID,
		ItemID:        r.ItemID,
		ItemName:      r.ItemName,
		Quantity:      r.Quantity,
		Status:        string(r.Status),
		CreatedBy:     r.CreatedBy,
		Justification: r.Justification,
		CreatedAt:     r.CreatedAt,
	}
}
