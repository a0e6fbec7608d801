package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
	"github.com/google/uuid"
)

type CheckoutCommand struct {
	Cart   *domain.Cart
	Policy domain.DiscountPolicy
}

func (c CheckoutCommand) Validate() error {
	if c.Cart == nil {
		return errors.New("cart is required")
	}
	if c.Policy == nil {
		return errors.New("discount policy is required")
	}
	return nil
}

type CommandHandler interface {
	Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error)
}

// CheckoutCommandHandler converts a cart into an order: it deducts stock
// all-or-nothing, records the order, and clears the cart. Any failure before
// the order is recorded leaves catalog and cart untouched.
type CheckoutCommandHandler struct {
	catalog ports.ProductCatalog
	history ports.OrderHistory
	events  ports.EventBus
}

func NewCheckoutCommandHandler(
	catalog ports.ProductCatalog,
	history ports.OrderHistory,
	events ports.EventBus,
) *CheckoutCommandHandler {
	return &CheckoutCommandHandler{
		catalog: catalog,
		history: history,
		events:  events,
	}
}

func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	subtotal := cmd.Cart.SubtotalCents()
	discount := clampDiscount(cmd.Policy.Apply(subtotal), subtotal)
	lines := cmd.Cart.Lines()

	order := domain.Order{
		ID:            uuid.NewString(),
		Lines:         lines,
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    subtotal - discount,
		CreatedAt:     time.Now().UTC(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	deductions := make([]ports.StockDeduction, 0, len(lines))
	for _, line := range lines {
		deductions = append(deductions, ports.StockDeduction{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if err := h.catalog.DeductStock(ctx, deductions); err != nil {
		_ = h.events.PublishCheckoutFailed(ctx, err.Error())
		return nil, err
	}

	if err := h.history.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	cmd.Cart.Clear()

	h.announceDepletedStock(ctx, deductions)

	if err := h.events.PublishOrderPlaced(ctx, order.ID); err != nil {
		return &order, fmt.Errorf("order recorded but failed to publish event: %w", err)
	}

	return &order, nil
}

// announceDepletedStock is best-effort: a lost event must not fail a checkout
// that already produced an order.
func (h *CheckoutCommandHandler) announceDepletedStock(ctx context.Context, deductions []ports.StockDeduction) {
	for _, d := range deductions {
		product, err := h.catalog.GetByID(ctx, d.ProductID)
		if err != nil {
			continue
		}
		if product.Stock == 0 {
			_ = h.events.PublishStockDepleted(ctx, d.ProductID)
		}
	}
}

// clampDiscount keeps the applied discount within [0, subtotal] regardless of
// what the policy computed, so order totals never go negative.
func clampDiscount(discount, subtotal int64) int64 {
	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return discount
}
