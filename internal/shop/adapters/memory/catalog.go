package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
)

// Catalog provides an in-memory product store. It is the reference
// implementation: products live only for the duration of the process.
type Catalog struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	order    []int64
}

// NewCatalog constructs an empty in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: make(map[int64]domain.Product)}
}

// Add inserts or overwrites a product by id. First insertion fixes the
// listing position.
func (c *Catalog) Add(_ context.Context, product domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[product.ID]; !ok {
		c.order = append(c.order, product.ID)
	}
	c.products[product.ID] = product
	return nil
}

// List returns all products in insertion order.
func (c *Catalog) List(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.products[id])
	}
	return result, nil
}

// GetByID fetches a single product by identifier.
func (c *Catalog) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	copy := product
	return &copy, nil
}

// Search returns products whose name or category contains the keyword,
// case-insensitively, in catalog order. No match yields an empty slice.
func (c *Catalog) Search(_ context.Context, keyword string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := []domain.Product{}
	for _, id := range c.order {
		if c.products[id].Matches(keyword) {
			result = append(result, c.products[id])
		}
	}
	return result, nil
}

// DeductStock validates every deduction against live stock and only then
// applies them, all under one lock. A shortfall anywhere mutates nothing.
func (c *Catalog) DeductStock(_ context.Context, deductions []ports.StockDeduction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range deductions {
		product, ok := c.products[d.ProductID]
		if !ok {
			return fmt.Errorf("%w: id %d", ports.ErrProductNotFound, d.ProductID)
		}
		if d.Quantity > product.Stock {
			return fmt.Errorf("%w: product %d has %d in stock, need %d",
				domain.ErrInsufficientStock, d.ProductID, product.Stock, d.Quantity)
		}
	}

	for _, d := range deductions {
		product := c.products[d.ProductID]
		product.Stock -= d.Quantity
		c.products[d.ProductID] = product
	}
	return nil
}
