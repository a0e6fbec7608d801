package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dkovacevic/minishop/internal/shop/domain"
	"github.com/dkovacevic/minishop/internal/shop/metrics"
	"github.com/dkovacevic/minishop/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type ObservableCommandHandler struct {
	handler CommandHandler
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewObservableCommandHandler(handler CommandHandler, logger *slog.Logger, metrics *metrics.Metrics) *ObservableCommandHandler {
	return &ObservableCommandHandler{
		handler: handler,
		logger:  logger,
		metrics: metrics,
	}
}

func (o *ObservableCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "CheckoutCommand.Handle")
	defer span.End()

	start := time.Now()
	var success bool
	defer func() {
		duration := time.Since(start).Seconds()
		o.metrics.RecordCheckoutDuration(ctx, duration)
		o.metrics.RecordCheckout(ctx, success)
	}()

	if cmd.Cart != nil {
		o.logger.InfoContext(ctx, "checking out cart",
			"lines", cmd.Cart.Len(),
			"subtotal_cents", cmd.Cart.SubtotalCents(),
			"policy", fmt.Sprintf("%T", cmd.Policy),
		)
	}

	order, err := o.handler.Handle(ctx, cmd)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		o.logger.ErrorContext(ctx, "checkout failed", "error", err)
		// The order may still have been recorded, e.g. when only the
		// follow-up event publish failed. Pass it through either way.
		return order, err
	}

	telemetry.AddSpanAttributes(span,
		attribute.String("order.id", order.ID),
		attribute.Int("order.lines", len(order.Lines)),
		attribute.Int64("order.subtotal_cents", order.SubtotalCents),
		attribute.Int64("order.discount_cents", order.DiscountCents),
		attribute.Int64("order.total_cents", order.TotalCents),
	)

	o.logger.InfoContext(ctx, "checkout completed",
		"order_id", order.ID,
		"total_cents", order.TotalCents,
	)

	success = true
	telemetry.SetSpanSuccess(span)

	return order, nil
}
