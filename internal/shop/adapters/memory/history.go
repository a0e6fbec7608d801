package memory

import (
	"context"
	"sync"

	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
)

// History keeps completed orders in memory, in append order.
type History struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

// NewHistory constructs a new in-memory order history.
func NewHistory() *History {
	return &History{byID: make(map[string]int)}
}

// Append records a completed order.
func (h *History) Append(_ context.Context, order domain.Order) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.byID[order.ID] = len(h.orders)
	h.orders = append(h.orders, order)
	return nil
}

// List returns all orders, oldest first.
func (h *History) List(_ context.Context) ([]domain.Order, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]domain.Order, len(h.orders))
	copy(result, h.orders)
	return result, nil
}

// GetByID fetches a single order by identifier.
func (h *History) GetByID(_ context.Context, id string) (*domain.Order, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	idx, ok := h.byID[id]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	order := h.orders[idx]
	return &order, nil
}
