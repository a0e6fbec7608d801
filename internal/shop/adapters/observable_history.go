package adapters

import (
	"context"
	"time"

	"github.com/dkovacevic/minishop/internal/database"
	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/ports"
	"github.com/dkovacevic/minishop/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type ObservableHistory struct {
	history ports.OrderHistory
	metrics *database.Metrics
}

func NewObservableHistory(history ports.OrderHistory, metrics *database.Metrics) *ObservableHistory {
	return &ObservableHistory{
		history: history,
		metrics: metrics,
	}
}

func (h *ObservableHistory) Append(ctx context.Context, order domain.Order) error {
	ctx, span := telemetry.StartSpan(ctx, "OrderHistory.Append")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("order.id", order.ID),
		attribute.String("operation", "append"),
	)

	start := time.Now()
	err := h.history.Append(ctx, order)
	duration := time.Since(start).Seconds()

	h.metrics.RecordQuery(ctx, "append_order", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}

func (h *ObservableHistory) List(ctx context.Context) ([]domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "OrderHistory.List")
	defer span.End()

	telemetry.AddSpanAttributes(span, attribute.String("operation", "list"))

	start := time.Now()
	orders, err := h.history.List(ctx)
	duration := time.Since(start).Seconds()

	h.metrics.RecordQuery(ctx, "list_orders", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("result.count", len(orders)))
	telemetry.SetSpanSuccess(span)
	return orders, nil
}

func (h *ObservableHistory) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "OrderHistory.GetByID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("order.id", id),
		attribute.String("operation", "get_by_id"),
	)

	start := time.Now()
	order, err := h.history.GetByID(ctx, id)
	duration := time.Since(start).Seconds()

	h.metrics.RecordQuery(ctx, "get_order_by_id", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.SetSpanSuccess(span)
	return order, nil
}
