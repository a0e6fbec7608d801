package ports

import "context"

// EventBus defines the contract for publishing shop lifecycle events.
type EventBus interface {
	PublishOrderPlaced(ctx context.Context, orderID string) error
	PublishCheckoutFailed(ctx context.Context, reason string) error
	PublishStockDepleted(ctx context.Context, productID int64) error
}
