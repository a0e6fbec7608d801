package queries

import (
	"context"
	"strings"

	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
)

// SearchProductsQuery represents a keyword search over the catalog.
// An empty keyword matches every product, a keyword matching nothing
// yields an empty result; neither is an error.
type SearchProductsQuery struct {
	Keyword string
}

// SearchProductsQueryHandler executes SearchProductsQuery against the catalog.
type SearchProductsQueryHandler struct {
	catalog ports.ProductCatalog
}

// NewSearchProductsQueryHandler constructs a SearchProductsQueryHandler.
func NewSearchProductsQueryHandler(catalog ports.ProductCatalog) *SearchProductsQueryHandler {
	return &SearchProductsQueryHandler{catalog: catalog}
}

// Handle executes the search.
func (h *SearchProductsQueryHandler) Handle(ctx context.Context, query SearchProductsQuery) ([]domain.Product, error) {
	return h.catalog.Search(ctx, strings.TrimSpace(query.Keyword))
}
