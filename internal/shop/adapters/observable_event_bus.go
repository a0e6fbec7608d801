package adapters

import (
	"context"
	"strconv"
	"time"

	"github.com/dkovacevic/minishop/internal/kafka"
	"github.com/dkovacevic/minishop/internal/shop/ports"
	"github.com/dkovacevic/minishop/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type ObservableEventBus struct {
	bus     ports.EventBus
	metrics *kafka.Metrics
}

func NewObservableEventBus(bus ports.EventBus, metrics *kafka.Metrics) *ObservableEventBus {
	return &ObservableEventBus{
		bus:     bus,
		metrics: metrics,
	}
}

func (e *ObservableEventBus) PublishOrderPlaced(ctx context.Context, orderID string) error {
	ctx, span := telemetry.StartSpan(ctx, "EventBus.PublishOrderPlaced")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("order.id", orderID),
		attribute.String("event.type", "order.placed"),
		attribute.String("topic", "order.placed"),
	)

	start := time.Now()
	err := e.bus.PublishOrderPlaced(ctx, orderID)
	duration := time.Since(start).Seconds()

	e.metrics.RecordPublish(ctx, "order.placed", duration, err == nil)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}

func (e *ObservableEventBus) PublishCheckoutFailed(ctx context.Context, reason string) error {
	ctx, span := telemetry.StartSpan(ctx, "EventBus.PublishCheckoutFailed")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("event.type", "checkout.failed"),
		attribute.String("topic", "checkout.failed"),
		attribute.String("failure.reason", reason),
	)

	start := time.Now()
	err := e.bus.PublishCheckoutFailed(ctx, reason)
	duration := time.Since(start).Seconds()

	e.metrics.RecordPublish(ctx, "checkout.failed", duration, err == nil)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}

func (e *ObservableEventBus) PublishStockDepleted(ctx context.Context, productID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "EventBus.PublishStockDepleted")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("product.id", strconv.FormatInt(productID, 10)),
		attribute.String("event.type", "stock.depleted"),
		attribute.String("topic", "stock.depleted"),
	)

	start := time.Now()
	err := e.bus.PublishStockDepleted(ctx, productID)
	duration := time.Since(start).Seconds()

	e.metrics.RecordPublish(ctx, "stock.depleted", duration, err == nil)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}
