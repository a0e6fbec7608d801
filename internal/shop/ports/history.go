package ports

import (
	"context"
	"errors"

	"github.com/dkovacevic/minishop/internal/shop/domain"
)

// OrderHistory is the append-only record of completed checkouts.
type OrderHistory interface {
	Append(ctx context.Context, order domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

var (
	// ErrOrderNotFound is returned when the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)
