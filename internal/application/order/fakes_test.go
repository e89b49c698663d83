package order

import (
	"context"
	"errors"

	"github.com/thefrankalbert/attabl-saas-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant // por ID
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) GetBySlug(_ context.Context, slug string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

type fakeMenuItemRepo struct {
	items map[string]*entity.MenuItem
}

func (f *fakeMenuItemRepo) GetByID(_ context.Context, tenantID, id string) (*entity.MenuItem, error) {
	m := f.items[id]
	if m == nil || m.TenantID != tenantID {
		return nil, nil
	}
	return m, nil
}

func (f *fakeMenuItemRepo) GetByIDs(_ context.Context, tenantID string, ids []string) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, id := range ids {
		if m := f.items[id]; m != nil && m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	headers map[string]*entity.Order
	items   map[string][]*entity.OrderItem

	failItems  bool // CreateItems falla
	failDelete bool // Delete falla (el borrado compensatorio)
	deleted    []string
	statuses   map[string]string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		headers:  make(map[string]*entity.Order),
		items:    make(map[string][]*entity.OrderItem),
		statuses: make(map[string]string),
	}
}

func (f *fakeOrderRepo) CreateHeader(_ context.Context, o *entity.Order) error {
	f.headers[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) CreateItems(_ context.Context, items []*entity.OrderItem) error {
	if f.failItems {
		return errors.New("insert order item: boom")
	}
	for _, it := range items {
		f.items[it.OrderID] = append(f.items[it.OrderID], it)
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, orderID string) error {
	if f.failDelete {
		return errors.New("delete order: boom")
	}
	delete(f.headers, orderID)
	delete(f.items, orderID)
	f.deleted = append(f.deleted, orderID)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, orderID string) (*entity.Order, error) {
	return f.headers[orderID], nil
}

func (f *fakeOrderRepo) GetItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID, status string) error {
	o, ok := f.headers[orderID]
	if !ok {
		return errors.New("pedido inexistente")
	}
	o.Status = status
	f.statuses[orderID] = status
	return nil
}

type fakeCouponRepo struct {
	coupons    map[string]*entity.Coupon // por código normalizado
	increments []string
	failIncr   bool
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, tenantID, code string) (*entity.Coupon, error) {
	c := f.coupons[code]
	if c == nil || c.TenantID != tenantID || !c.Active {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCouponRepo) Create(_ context.Context, c *entity.Coupon) error {
	f.coupons[c.Code] = c
	return nil
}

func (f *fakeCouponRepo) List(_ context.Context, tenantID string) ([]*entity.Coupon, error) {
	var out []*entity.Coupon
	for _, c := range f.coupons {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCouponRepo) IncrementUsage(_ context.Context, couponID string) error {
	if f.failIncr {
		return errors.New("increment: boom")
	}
	f.increments = append(f.increments, couponID)
	return nil
}
