package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/bookstore/internal/core/domain"
)

func TestMemoryOrderStore_SeedTotalsMatchLines(t *testing.T) {
	for _, o := range SeedOrders() {
		sum := decimal.Zero
		for _, l := range o.Lines {
			sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		if !sum.Equal(o.Total) {
			t.Errorf("order %s: lines sum to %s, total is %s", o.ID, sum, o.Total)
		}
	}
}

func TestMemoryOrderStore_ListByUserNewestFirst(t *testing.T) {
	s := NewMemoryOrderStore(SeedOrders())

	orders, err := s.ListByUser(context.Background(), DemoUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].Date.After(orders[i-1].Date) {
			t.Errorf("orders not newest-first at index %d", i)
		}
	}
	if orders[0].ID != "ORD-GHI789" {
		t.Errorf("expected newest ORD-GHI789 first, got %s", orders[0].ID)
	}
}

func TestMemoryOrderStore_ListByUserScopesToOwner(t *testing.T) {
	s := NewMemoryOrderStore(SeedOrders())

	orders, err := s.ListByUser(context.Background(), "user-somebody-else")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestMemoryOrderStore_UpdateStatus(t *testing.T) {
	s := NewMemoryOrderStore(SeedOrders())
	ctx := context.Background()

	ok, err := s.UpdateStatus(ctx, "ORD-GHI789", domain.OrderStatusShipping)
	if err != nil || !ok {
		t.Fatalf("update failed: ok=%v err=%v", ok, err)
	}

	order, _ := s.Get(ctx, "ORD-GHI789")
	if order.Status != domain.OrderStatusShipping {
		t.Errorf("expected shipping, got %s", order.Status)
	}

	ok, _ = s.UpdateStatus(ctx, "ORD-NOPE", domain.OrderStatusCompleted)
	if ok {
		t.Error("expected missing order to report absence")
	}
}

func TestMemoryOrderStore_CreateDoesNotAliasCaller(t *testing.T) {
	s := NewMemoryOrderStore(nil)
	ctx := context.Background()

	order := domain.Order{
		ID:     "ORD-TEST01",
		UserID: "user-reader",
		Date:   time.Now(),
		Status: domain.OrderStatusPending,
		Lines:  []domain.OrderLine{{BookID: "1", Quantity: 1}},
	}
	if err := s.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	order.Lines[0].Quantity = 99
	stored, _ := s.Get(ctx, "ORD-TEST01")
	if stored.Lines[0].Quantity != 1 {
		t.Errorf("stored order aliases caller slice, quantity %d", stored.Lines[0].Quantity)
	}
}
