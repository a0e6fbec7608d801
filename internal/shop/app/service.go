package app

import (
	"context"
	"log/slog"

	"github.com/dkovacevic/minishop/internal/shop/app/commands"
	"github.com/dkovacevic/minishop/internal/shop/app/queries"
	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/metrics"
	"github.com/dkovacevic/minishop/internal/shop/ports"
)

// Service bundles the use cases of one shopping session: a single user with
// a single cart working against the injected catalog and order history.
type Service struct {
	userName  string
	catalog   ports.ProductCatalog
	cart      *domain.Cart
	idemStore ports.IdempotencyStore

	checkoutHandler       commands.CommandHandler
	getOrderHandler       *queries.GetOrderQueryHandler
	searchProductsHandler *queries.SearchProductsQueryHandler
	history               ports.OrderHistory
}

// NewService wires required dependencies.
func NewService(
	userName string,
	catalog ports.ProductCatalog,
	history ports.OrderHistory,
	events ports.EventBus,
	idem ports.IdempotencyStore,
	logger *slog.Logger,
	metrics *metrics.Metrics,
) *Service {
	coreHandler := commands.NewCheckoutCommandHandler(catalog, history, events)
	observableHandler := commands.NewObservableCommandHandler(coreHandler, logger, metrics)

	return &Service{
		userName:              userName,
		catalog:               catalog,
		cart:                  domain.NewCart(),
		idemStore:             idem,
		checkoutHandler:       observableHandler,
		getOrderHandler:       queries.NewGetOrderQueryHandler(history),
		searchProductsHandler: queries.NewSearchProductsQueryHandler(catalog),
		history:               history,
	}
}

// UserName returns the session owner's display name.
func (s *Service) UserName() string {
	return s.userName
}

// ListProducts returns the full catalog in insertion order.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.List(ctx)
}

// SearchProducts returns catalog entries matching the keyword.
func (s *Service) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	return s.searchProductsHandler.Handle(ctx, queries.SearchProductsQuery{Keyword: keyword})
}

// Product retrieves a single catalog entry by id.
func (s *Service) Product(ctx context.Context, id int64) (*domain.Product, error) {
	return s.catalog.GetByID(ctx, id)
}

// AddToCart resolves the product and adds the quantity to the cart, checking
// against the product's live stock.
func (s *Service) AddToCart(ctx context.Context, productID int64, quantity int) error {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	return s.cart.AddItem(*product, quantity)
}

// UpdateCartQuantity sets an absolute quantity on an existing cart line.
func (s *Service) UpdateCartQuantity(ctx context.Context, productID int64, quantity int) error {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	return s.cart.UpdateQuantity(*product, quantity)
}

// RemoveFromCart drops a cart line. Removing an absent product is a no-op.
func (s *Service) RemoveFromCart(productID int64) {
	s.cart.RemoveItem(productID)
}

// CartLines returns the cart contents in insertion order.
func (s *Service) CartLines() []domain.CartLine {
	return s.cart.Lines()
}

// CartSubtotal returns the cart total before any discount.
func (s *Service) CartSubtotal() int64 {
	return s.cart.SubtotalCents()
}

// CartIsEmpty reports whether the cart has no lines.
func (s *Service) CartIsEmpty() bool {
	return s.cart.IsEmpty()
}

// Checkout converts the session cart into an order under the given policy.
func (s *Service) Checkout(ctx context.Context, policy domain.DiscountPolicy) (*domain.Order, error) {
	return s.checkoutHandler.Handle(ctx, commands.CheckoutCommand{
		Cart:   s.cart,
		Policy: policy,
	})
}

// ListOrders returns the session's order history, oldest first.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.history.List(ctx)
}

// GetOrder retrieves an order by ID.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.getOrderHandler.Handle(ctx, queries.GetOrderQuery{OrderID: id})
}

// SaveIdempotentResponse writes response details for a key.
func (s *Service) SaveIdempotentResponse(ctx context.Context, key string, response ports.StoredResponse) error {
	return s.idemStore.Save(ctx, key, response)
}

// GetIdempotentResponse retrieves previously stored response data.
func (s *Service) GetIdempotentResponse(ctx context.Context, key string) (*ports.StoredResponse, error) {
	return s.idemStore.Get(ctx, key)
}
