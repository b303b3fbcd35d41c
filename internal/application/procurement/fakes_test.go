package procurement_test

import (
	"context"
	"sort"
	"sync"

	"github.com/masab009/warehouse-api-server-EIS/internal/domain/entity"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: un almacén en memoria con repos que implementan los
// puertos de dominio, y un TxRunner que serializa "transacciones" con un
// mutex y restaura un snapshot si la función devuelve error (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu           sync.RWMutex
	items        map[string]entity.Item
	inventory    map[string]entity.InventoryRecord
	requisitions map[string]entity.Requisition
	orders       map[string]entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		items:        map[string]entity.Item{},
		inventory:    map[string]entity.InventoryRecord{},
		requisitions: map[string]entity.Requisition{},
		orders:       map[string]entity.Order{},
	}
}

func (s *memStore) putItem(i entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID] = i
}

func (s *memStore) putInventory(r entity.InventoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[r.ID] = r
}

func (s *memStore) putRequisition(r entity.Requisition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requisitions[r.ID] = r
}

func (s *memStore) putOrder(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *memStore) inventoryQty(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory[id].QuantityOnHand
}

func (s *memStore) orderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// fakeItemRepo implementa repository.ItemRepository.
type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if it, ok := r.s.items[id]; ok {
		cp := it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := it
		out = append(out, &cp)
	}
	return out, nil
}

// fakeInventoryRepo implementa repository.InventoryRepository.
type fakeInventoryRepo struct{ s *memStore }

func (r *fakeInventoryRepo) GetByItemForUpdate(itemID, warehouseID string) (*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []string
	for id, rec := range r.s.inventory {
		if rec.ItemID != itemID {
			continue
		}
		if warehouseID != "" && rec.WarehouseID != warehouseID {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids) // primera coincidencia determinista, como ORDER BY id
	rec := r.s.inventory[ids[0]]
	return &rec, nil
}

func (r *fakeInventoryRepo) UpdateQuantity(id string, quantityOnHand int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec := r.s.inventory[id]
	rec.QuantityOnHand = quantityOnHand
	r.s.inventory[id] = rec
	return nil
}

func (r *fakeInventoryRepo) List() ([]*entity.InventoryRow, error) { return nil, nil }

func (r *fakeInventoryRepo) GetDetail(id string) (*entity.InventoryDetail, error) { return nil, nil }

// fakeRequisitionRepo implementa repository.RequisitionRepository.
type fakeRequisitionRepo struct{ s *memStore }

func (r *fakeRequisitionRepo) Create(req *entity.Requisition) error {
	r.s.putRequisition(*req)
	return nil
}

func (r *fakeRequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if req, ok := r.s.requisitions[id]; ok {
		cp := req
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRequisitionRepo) GetForUpdate(id string) (*entity.Requisition, error) {
	return r.GetByID(id)
}

func (r *fakeRequisitionRepo) UpdateStatus(id string, status entity.RequisitionStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req := r.s.requisitions[id]
	req.Status = status
	r.s.requisitions[id] = req
	return nil
}

func (r *fakeRequisitionRepo) List(limit, offset int) ([]*entity.Requisition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Requisition, 0, len(r.s.requisitions))
	for _, req := range r.s.requisitions {
		cp := req
		out = append(out, &cp)
	}
	return out, nil
}

// fakeOrderRepo implementa repository.OrderRepository.
type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.s.putOrder(*order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if o, ok := r.s.orders[id]; ok {
		cp := o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o := r.s.orders[id]
	o.Status = status
	r.s.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		cp := o
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner serializa transacciones con un mutex (equivalente al bloqueo
// por fila de la BD real) y hace rollback por snapshot si fn falla.
type fakeTxRunner struct {
	s    *memStore
	txMu sync.Mutex
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invRepo repository.InventoryRepository,
	reqRepo repository.RequisitionRepository,
) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()

	snap := t.snapshot()
	err := fn(&fakeOrderRepo{s: t.s}, &fakeInventoryRepo{s: t.s}, &fakeRequisitionRepo{s: t.s})
	if err != nil {
		t.restore(snap)
	}
	return err
}

type storeSnapshot struct {
	inventory    map[string]entity.InventoryRecord
	requisitions map[string]entity.Requisition
	orders       map[string]entity.Order
}

func (t *fakeTxRunner) snapshot() storeSnapshot {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	snap := storeSnapshot{
		inventory:    make(map[string]entity.InventoryRecord, len(t.s.inventory)),
		requisitions: make(map[string]entity.Requisition, len(t.s.requisitions)),
		orders:       make(map[string]entity.Order, len(t.s.orders)),
	}
	for k, v := range t.s.inventory {
		snap.inventory[k] = v
	}
	for k, v := range t.s.requisitions {
		snap.requisitions[k] = v
	}
	for k, v := range t.s.orders {
		snap.orders[k] = v
	}
	return snap
}

func (t *fakeTxRunner) restore(snap storeSnapshot) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.inventory = snap.inventory
	t.s.requisitions = snap.requisitions
	t.s.orders = snap.orders
}
