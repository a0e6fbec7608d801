package ports

import (
	"context"
	"errors"

	"github.com/dkovacevic/minishop/internal/shop/domain"
)

// ProductCatalog exposes the product store the application layer works
// against. Listings and search results follow first-insertion order so
// output is deterministic.
type ProductCatalog interface {
	Add(ctx context.Context, product domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, keyword string) ([]domain.Product, error)

	// DeductStock applies all deductions or none: every line is validated
	// against live stock before any mutation, so a shortfall anywhere
	// leaves the catalog untouched.
	DeductStock(ctx context.Context, deductions []StockDeduction) error
}

// StockDeduction is one product's share of a checkout.
type StockDeduction struct {
	ProductID int64
	Quantity  int
}

var (
	// ErrProductNotFound is returned when the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")
)
