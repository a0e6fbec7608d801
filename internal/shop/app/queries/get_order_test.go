package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dkovacevic/minishop/internal/shop/app/queries"
	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
)

type stubHistory struct {
	orders map[string]domain.Order
}

func (s *stubHistory) Append(_ context.Context, order domain.Order) error {
	s.orders[order.ID] = order
	return nil
}

func (s *stubHistory) List(context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubHistory) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	return &order, nil
}

func TestGetOrderQuery(t *testing.T) {
	history := &stubHistory{orders: map[string]domain.Order{
		"order-1": {ID: "order-1", TotalCents: 3000},
	}}
	handler := queries.NewGetOrderQueryHandler(history)

	t.Run("returns the order", func(t *testing.T) {
		order, err := handler.Handle(context.Background(), queries.GetOrderQuery{OrderID: "order-1"})
		if err != nil {
			t.Fatalf("Handle() failed: %v", err)
		}
		if order.TotalCents != 3000 {
			t.Errorf("expected total 3000, got %d", order.TotalCents)
		}
	})

	t.Run("rejects a blank id", func(t *testing.T) {
		if _, err := handler.Handle(context.Background(), queries.GetOrderQuery{OrderID: "  "}); err == nil {
			t.Error("expected an error for a blank order id")
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.GetOrderQuery{OrderID: "missing"})
		if !errors.Is(err, ports.ErrOrderNotFound) {
			t.Errorf("Handle() error = %v, want ErrOrderNotFound", err)
		}
	})
}
