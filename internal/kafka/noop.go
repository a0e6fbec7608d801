package kafka

import (
	"context"
	"log/slog"
)

// NoopEventBus logs events without sending them to Kafka. Useful for local dev before wiring Kafka.
type NoopEventBus struct{}

// NewNoopEventBus returns a new no-op event publisher.
func NewNoopEventBus() *NoopEventBus {
	return &NoopEventBus{}
}

func (n *NoopEventBus) PublishOrderPlaced(_ context.Context, orderID string) error {
	slog.Debug("event::order_placed", "order_id", orderID)
	return nil
}

func (n *NoopEventBus) PublishCheckoutFailed(_ context.Context, reason string) error {
	slog.Debug("event::checkout_failed", "reason", reason)
	return nil
}

func (n *NoopEventBus) PublishStockDepleted(_ context.Context, productID int64) error {
	slog.Debug("event::stock_depleted", "product_id", productID)
	return nil
}
