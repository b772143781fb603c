package repository

import (
	"context"
	"sort"
	"sync"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

// The memory repositories back STORAGE_DRIVER=memory and keep copies, so
// callers never share state with the store.

type MemoryOrderRepository struct {
	mu sync.RWMutex
	m  map[string]*entities.Order
}

var _ interfaces.IOrderRepository = (*MemoryOrderRepository)(nil)

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{m: make(map[string]*entities.Order)}
}

func (r *MemoryOrderRepository) Save(_ context.Context, o *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[o.GatewayID] = snapshotOrder(o)
	return nil
}

func (r *MemoryOrderRepository) FindByGatewayID(_ context.Context, gatewayID string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.m[gatewayID]
	if !ok {
		return nil, nil
	}
	return snapshotOrder(o), nil
}

func (r *MemoryOrderRepository) FindByPlatformID(_ context.Context, platformID string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found *entities.Order
	for _, o := range r.m {
		if o.PlatformID != platformID {
			continue
		}
		if found == nil || o.CreatedAt.After(found.CreatedAt) {
			found = o
		}
	}
	if found == nil {
		return nil, nil
	}
	return snapshotOrder(found), nil
}

type MemoryChargeRepository struct {
	mu sync.RWMutex
	m  map[string]entities.Charge
}

var _ interfaces.IChargeRepository = (*MemoryChargeRepository)(nil)

func NewMemoryChargeRepository() *MemoryChargeRepository {
	return &MemoryChargeRepository{m: make(map[string]entities.Charge)}
}

func (r *MemoryChargeRepository) Save(_ context.Context, c entities.Charge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[c.GatewayID] = c
	return nil
}

func (r *MemoryChargeRepository) ListByOrderGatewayID(_ context.Context, orderGatewayID string) ([]entities.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Charge{}
	for _, c := range r.m {
		if c.OrderGatewayID == orderGatewayID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GatewayID < out[j].GatewayID })
	return out, nil
}

type MemoryCardRepository struct {
	mu sync.RWMutex
	m  map[string]entities.SavedCard
}

var _ interfaces.ICardRepository = (*MemoryCardRepository)(nil)

func NewMemoryCardRepository() *MemoryCardRepository {
	return &MemoryCardRepository{m: make(map[string]entities.SavedCard)}
}

func (r *MemoryCardRepository) Save(_ context.Context, c entities.SavedCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[c.GatewayID] = c
	return nil
}

func (r *MemoryCardRepository) ListByOwner(_ context.Context, ownerEmail string) ([]entities.SavedCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.SavedCard{}
	for _, c := range r.m {
		if c.OwnerEmail == ownerEmail {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type MemoryPlatformOrderRepository struct {
	mu sync.RWMutex
	m  map[string]*entities.PlatformOrderRecord
}

var _ interfaces.IPlatformOrderRepository = (*MemoryPlatformOrderRepository)(nil)

func NewMemoryPlatformOrderRepository() *MemoryPlatformOrderRepository {
	return &MemoryPlatformOrderRepository{m: make(map[string]*entities.PlatformOrderRecord)}
}

func (r *MemoryPlatformOrderRepository) Save(_ context.Context, record *entities.PlatformOrderRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[record.Code] = cloneRecord(record)
	return nil
}

func (r *MemoryPlatformOrderRepository) FindByCode(_ context.Context, code string) (*entities.PlatformOrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.m[code]
	if !ok {
		return nil, nil
	}
	return cloneRecord(rec), nil
}

func cloneRecord(r *entities.PlatformOrderRecord) *entities.PlatformOrderRecord {
	c := *r
	c.Payments = append([]entities.Payment(nil), r.Payments...)
	c.Items = append([]entities.Item(nil), r.Items...)
	c.History = append([]entities.HistoryComment(nil), r.History...)
	if r.Customer != nil {
		customer := *r.Customer
		c.Customer = &customer
	}
	if r.Shipping != nil {
		shipping := *r.Shipping
		c.Shipping = &shipping
	}
	return &c
}
