package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/procurement"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/usecase"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
	apphttp "github.com/masab009/warehouse-api-server-EIS/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	items        map[string]*entity.Item
	requisitions map[string]*entity.Requisition
	orders       map[string]*entity.Order
	inventory    map[string]*entity.InventoryRecord
	pickLists    map[string]*entity.PickList
}

func newStore() *store {
	return &store{
		items:        map[string]*entity.Item{},
		requisitions: map[string]*entity.Requisition{},
		orders:       map[string]*entity.Order{},
		inventory:    map[string]*entity.InventoryRecord{},
		pickLists:    map[string]*entity.PickList{},
	}
}

type itemRepo struct{ s *store }

func (r *itemRepo) GetByID(id string) (*entity.Item, error) { return r.s.items[id], nil }
func (r *itemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		out = append(out, it)
	}
	return out, nil
}

type reqRepo struct{ s *store }

func (r *reqRepo) Create(req *entity.Requisition) error {
	cp := *req
	r.s.requisitions[req.ID] = &cp
	return nil
}
func (r *reqRepo) GetByID(id string) (*entity.Requisition, error) { return r.s.requisitions[id], nil }
func (r *reqRepo) GetForUpdate(id string) (*entity.Requisition, error) {
	return r.s.requisitions[id], nil
}
func (r *reqRepo) UpdateStatus(id string, status entity.RequisitionStatus) error {
	r.s.requisitions[id].Status = status
	return nil
}
func (r *reqRepo) List(limit, offset int) ([]*entity.Requisition, error) {
	out := make([]*entity.Requisition, 0, len(r.s.requisitions))
	for _, req := range r.s.requisitions {
		out = append(out, req)
	}
	return out, nil
}

type orderRepo struct{ s *store }

func (r *orderRepo) Create(o *entity.Order) error {
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}
func (r *orderRepo) GetByID(id string) (*entity.Order, error)      { return r.s.orders[id], nil }
func (r *orderRepo) GetForUpdate(id string) (*entity.Order, error) { return r.s.orders[id], nil }
func (r *orderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	r.s.orders[id].Status = status
	return nil
}
func (r *orderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, o)
	}
	return out, nil
}

type invRepo struct{ s *store }

func (r *invRepo) GetByItemForUpdate(itemID, warehouseID string) (*entity.InventoryRecord, error) {
	ids := make([]string, 0, len(r.s.inventory))
	for id := range r.s.inventory {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rec := r.s.inventory[id]
		if rec.ItemID != itemID {
			continue
		}
		if warehouseID != "" && rec.WarehouseID != warehouseID {
			continue
		}
		return rec, nil
	}
	return nil, nil
}
func (r *invRepo) UpdateQuantity(id string, quantityOnHand int) error {
	r.s.inventory[id].QuantityOnHand = quantityOnHand
	return nil
}
func (r *invRepo) List() ([]*entity.InventoryRow, error)                { return nil, nil }
func (r *invRepo) GetDetail(id string) (*entity.InventoryDetail, error) { return nil, nil }

type pickRepo struct{ s *store }

func (r *pickRepo) GetByID(id string) (*entity.PickList, error)      { return r.s.pickLists[id], nil }
func (r *pickRepo) GetForUpdate(id string) (*entity.PickList, error) { return r.s.pickLists[id], nil }
func (r *pickRepo) UpdateStatus(id string, status entity.PickListStatus, assignedTo string) error {
	p := r.s.pickLists[id]
	p.Status = status
	if assignedTo != "" {
		p.AssignedTo = assignedTo
	}
	return nil
}
func (r *pickRepo) List() ([]*entity.PickList, error) {
	out := make([]*entity.PickList, 0, len(r.s.pickLists))
	for _, p := range r.s.pickLists {
		out = append(out, p)
	}
	return out, nil
}
func (r *pickRepo) ListItems(pickListID string) ([]*entity.PickListItem, error) { return nil, nil }

// txRunner ejecuta la función directamente sobre los fakes; el rollback se
// ejercita en los tests de la capa de casos de uso, no aquí.
type txRunner struct{ s *store }

func (t *txRunner) Run(ctx context.Context, fn func(repository.OrderRepository, repository.InventoryRepository, repository.RequisitionRepository) error) error {
	return fn(&orderRepo{t.s}, &invRepo{t.s}, &reqRepo{t.s})
}

func (t *txRunner) RunPicking(ctx context.Context, fn func(repository.PickListRepository) error) error {
	return fn(&pickRepo{t.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(s *store) *fiber.App {
	tx := &txRunner{s: s}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RequisitionUC: procurement.NewRequisitionUseCase(tx, &itemRepo{s}, &reqRepo{s}, true),
		OrderUC:       procurement.NewOrderUseCase(tx, &itemRepo{s}, &orderRepo{s}, true),
		ItemUC:        usecase.NewItemUseCase(&itemRepo{s}),
		InventoryUC:   usecase.NewInventoryUseCase(&invRepo{s}),
		PickListUC:    usecase.NewPickListUseCase(tx, &pickRepo{s}, true),
		PackageUC:     usecase.NewPackageUseCase(&pkgRepo{}),
		WarehouseUC:   usecase.NewWarehouseUseCase(&whRepo{}),
	})
	return app
}

type pkgRepo struct{}

func (r *pkgRepo) GetByID(id string) (*entity.Package, error) { return nil, nil }
func (r *pkgRepo) List() ([]*entity.Package, error)           { return nil, nil }

type whRepo struct{}

func (r *whRepo) GetByID(id string) (*entity.Warehouse, error) { return nil, nil }
func (r *whRepo) List() ([]*entity.Warehouse, error)           { return nil, nil }

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func seedItem(s *store) {
	s.items["ITEM-1"] = &entity.Item{
		ID:       "ITEM-1",
		Name:     "Tornillo M8",
		SKU:      "TOR-M8",
		UnitCost: decimal.NewFromInt(12),
	}
	s.inventory["INV-1"] = &entity.InventoryRecord{
		ID: "INV-1", ItemID: "ITEM-1", WarehouseID: "WH-1", QuantityOnHand: 40,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Requisiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRequisitionHandler_CicloCompleto(t *testing.T) {
	s := newStore()
	seedItem(s)
	app := buildTestApp(s)

	// Crear: nace en PENDING con el nombre del ítem congelado
	resp, raw := doJSON(t, app, http.MethodPost, "/api/requisitions/", dto.CreateRequisitionRequest{
		ItemID: "ITEM-1", Quantity: 5, CreatedBy: "ana",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created dto.RequisitionResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "PENDING", created.Status)
	assert.Equal(t, "Tornillo M8", created.ItemName)

	// Aprobar
	resp, raw = doJSON(t, app, http.MethodPatch, "/api/requisitions/"+created.ID+"/status",
		dto.StatusUpdateRequest{Status: "APPROVED"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var decided dto.RequisitionResponse
	require.NoError(t, json.Unmarshal(raw, &decided))
	assert.Equal(t, "APPROVED", decided.Status)

	// Ya decidida: rechazar debe devolver 409
	resp, raw = doJSON(t, app, http.MethodPatch, "/api/requisitions/"+created.ID+"/status",
		dto.StatusUpdateRequest{Status: "REJECTED"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "ILLEGAL_TRANSITION", errResp.Code)
}

func TestRequisitionHandler_Errores(t *testing.T) {
	s := newStore()
	seedItem(s)
	app := buildTestApp(s)

	// Cantidad inválida
	resp, _ := doJSON(t, app, http.MethodPost, "/api/requisitions/", dto.CreateRequisitionRequest{
		ItemID: "ITEM-1", Quantity: 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Ítem inexistente
	resp, raw := doJSON(t, app, http.MethodPost, "/api/requisitions/", dto.CreateRequisitionRequest{
		ItemID: "ITEM-X", Quantity: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "ITEM_NOT_FOUND", errResp.Code)

	// Estado desconocido
	s.requisitions["REQ-1"] = &entity.Requisition{ID: "REQ-1", ItemID: "ITEM-1", Quantity: 1, Status: entity.RequisitionPending}
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/requisitions/REQ-1/status",
		dto.StatusUpdateRequest{Status: "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Requisición inexistente
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/requisitions/REQ-NOPE/status",
		dto.StatusUpdateRequest{Status: "APPROVED"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderHandler_CrearIncrementaInventario(t *testing.T) {
	s := newStore()
	seedItem(s)
	app := buildTestApp(s)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/orders/", dto.CreateOrderRequest{
		ItemID: "ITEM-1", Quantity: 10, UnitCost: decimal.NewFromInt(12),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var out dto.OrderResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "ORDERED", out.Status)
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(120)), "total = cantidad × costo unitario")
	assert.WithinDuration(t, time.Now().Add(entity.LeadTime), out.DeliveryDate, time.Minute)

	// La creación abona las unidades de inmediato
	assert.Equal(t, 50, s.inventory["INV-1"].QuantityOnHand)
}

func TestOrderHandler_CicloDeEstados(t *testing.T) {
	s := newStore()
	seedItem(s)
	app := buildTestApp(s)
	s.orders["ORD-1"] = &entity.Order{ID: "ORD-1", ItemID: "ITEM-1", Quantity: 1, Status: entity.OrderOrdered}

	for _, next := range []string{"IN_TRANSIT", "DELIVERED"} {
		resp, raw := doJSON(t, app, http.MethodPatch, "/api/orders/ORD-1/status",
			dto.StatusUpdateRequest{Status: next})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	}
	assert.Equal(t, entity.OrderDelivered, s.orders["ORD-1"].Status)

	// Terminal: repetir DELIVERED es idempotente, retroceder es 409
	resp, _ := doJSON(t, app, http.MethodPatch, "/api/orders/ORD-1/status",
		dto.StatusUpdateRequest{Status: "DELIVERED"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/orders/ORD-1/status",
		dto.StatusUpdateRequest{Status: "CANCELLED"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listas de picking
// ──────────────────────────────────────────────────────────────────────────────

func TestPickListHandler_AsignarRequierePicker(t *testing.T) {
	s := newStore()
	app := buildTestApp(s)
	s.pickLists["PL-1"] = &entity.PickList{ID: "PL-1", OrderID: "ORD-1", Status: entity.PickListPending}

	// ASSIGNED sin assigned_to → 400
	resp, _ := doJSON(t, app, http.MethodPatch, "/api/pick-lists/PL-1/status",
		dto.StatusUpdateRequest{Status: "ASSIGNED"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPatch, "/api/pick-lists/PL-1/status",
		dto.StatusUpdateRequest{Status: "ASSIGNED", AssignedTo: "carlos"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "carlos", s.pickLists["PL-1"].AssignedTo)

	// COMPLETED solo desde ASSIGNED
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/pick-lists/PL-1/status",
		dto.StatusUpdateRequest{Status: "COMPLETED"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListados_Responden200(t *testing.T) {
	s := newStore()
	seedItem(s)
	app := buildTestApp(s)

	for _, path := range []string{
		"/api/requisitions/", "/api/orders/", "/api/items/",
		"/api/warehouses/", "/api/inventory/", "/api/pick-lists/", "/api/packages/",
	} {
		resp, raw := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s: %s", path, string(raw))
	}
}
