package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkovacevic/minishop/internal/shop/adapters/memory"
	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
)

func testOrder(id string) domain.Order {
	return domain.Order{
		ID:            id,
		Lines:         []domain.CartLine{{ProductID: 1, Name: "Tablet", UnitPriceCents: 2000, Quantity: 2}},
		SubtotalCents: 4000,
		DiscountCents: 1000,
		TotalCents:    3000,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestHistoryAppendAndList(t *testing.T) {
	ctx := context.Background()
	history := memory.NewHistory()

	for _, id := range []string{"order-1", "order-2"} {
		if err := history.Append(ctx, testOrder(id)); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	orders, err := history.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "order-1" || orders[1].ID != "order-2" {
		t.Errorf("expected append order preserved, got %s then %s", orders[0].ID, orders[1].ID)
	}
}

func TestHistoryGetByID(t *testing.T) {
	ctx := context.Background()
	history := memory.NewHistory()

	if err := history.Append(ctx, testOrder("order-1")); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	t.Run("returns the order", func(t *testing.T) {
		order, err := history.GetByID(ctx, "order-1")
		if err != nil {
			t.Fatalf("GetByID() failed: %v", err)
		}
		if order.TotalCents != 3000 {
			t.Errorf("expected total 3000, got %d", order.TotalCents)
		}
	})

	t.Run("returns ErrOrderNotFound for an unknown id", func(t *testing.T) {
		if _, err := history.GetByID(ctx, "missing"); !errors.Is(err, ports.ErrOrderNotFound) {
			t.Errorf("GetByID() error = %v, want ErrOrderNotFound", err)
		}
	})
}
