package cli_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dkovacevic/minishop/internal/cli"
	idemmemory "github.com/dkovacevic/minishop/internal/idempotency/memory"
	"github.com/dkovacevic/minishop/internal/kafka"
	"github.com/dkovacevic/minishop/internal/shop/adapters/memory"
	"github.com/dkovacevic/minishop/internal/shop/app"
	"github.com/dkovacevic/minishop/internal/shop/domain"
	shopmetrics "github.com/dkovacevic/minishop/internal/shop/metrics"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	ctx := context.Background()

	catalog := memory.NewCatalog()
	seed := []domain.Product{
		{ID: 1, Name: "Tablet", Category: "Digital", PriceCents: 2000, Stock: 5},
		{ID: 2, Name: "Computer", Category: "Digital", PriceCents: 4000, Stock: 3},
		{ID: 3, Name: "Mouse", Category: "Accessories", PriceCents: 550, Stock: 10},
	}
	for _, p := range seed {
		if err := catalog.Add(ctx, p); err != nil {
			t.Fatalf("failed to seed catalog: %v", err)
		}
	}

	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")
	m, err := shopmetrics.NewMetrics(meter)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewService("Ada", catalog, memory.NewHistory(), kafka.NewNoopEventBus(), idemmemory.NewStore(), logger, m)
}

func runScript(t *testing.T, service *app.Service, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	c := cli.New(service, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("cli run failed: %v", err)
	}
	return out.String()
}

func TestGreetsAndExits(t *testing.T) {
	output := runScript(t, newTestService(t), "0")

	if !strings.Contains(output, "Welcome to the shop, Ada!") {
		t.Errorf("expected greeting, got:\n%s", output)
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Errorf("expected goodbye, got:\n%s", output)
	}
}

func TestBrowseProducts(t *testing.T) {
	output := runScript(t, newTestService(t), "1", "0")

	if !strings.Contains(output, "1. Tablet (Digital) $20.00, 5 in stock") {
		t.Errorf("expected tablet listing, got:\n%s", output)
	}
	if !strings.Contains(output, "3. Mouse (Accessories) $5.50, 10 in stock") {
		t.Errorf("expected mouse listing, got:\n%s", output)
	}
}

func TestSearchProducts(t *testing.T) {
	t.Run("matches category", func(t *testing.T) {
		output := runScript(t, newTestService(t), "2", "digital", "0")
		if !strings.Contains(output, "Tablet") || !strings.Contains(output, "Computer") {
			t.Errorf("expected digital products, got:\n%s", output)
		}
	})

	t.Run("no match", func(t *testing.T) {
		output := runScript(t, newTestService(t), "2", "keyboard", "0")
		if !strings.Contains(output, "No products found.") {
			t.Errorf("expected no-match message, got:\n%s", output)
		}
	})
}

func TestAddAndViewCart(t *testing.T) {
	output := runScript(t, newTestService(t), "3", "1", "2", "4", "0")

	if !strings.Contains(output, "Added to cart.") {
		t.Errorf("expected add confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "1. Tablet x2 = $40.00") {
		t.Errorf("expected cart line, got:\n%s", output)
	}
	if !strings.Contains(output, "Subtotal: $40.00") {
		t.Errorf("expected subtotal, got:\n%s", output)
	}
}

func TestAddRejectsOverStock(t *testing.T) {
	output := runScript(t, newTestService(t), "3", "1", "99", "0")

	if !strings.Contains(output, "insufficient stock") {
		t.Errorf("expected stock error, got:\n%s", output)
	}
}

func TestUpdateAndRemove(t *testing.T) {
	service := newTestService(t)

	output := runScript(t, service, "3", "1", "2", "5", "1", "4", "4", "5", "1", "0", "4", "0")

	if !strings.Contains(output, "Cart updated.") {
		t.Errorf("expected update confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "1. Tablet x4 = $80.00") {
		t.Errorf("expected updated line, got:\n%s", output)
	}
	if !strings.Contains(output, "Removed from cart.") {
		t.Errorf("expected removal confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "Your cart is empty.") {
		t.Errorf("expected empty cart, got:\n%s", output)
	}
}

func TestCheckoutWithFixedDiscount(t *testing.T) {
	output := runScript(t, newTestService(t),
		"3", "2", "1", // add one computer
		"6", "3", "1000", // checkout with $10 off
		"7", // order history
		"0",
	)

	if !strings.Contains(output, "placed!") {
		t.Errorf("expected order confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "Subtotal: $40.00") {
		t.Errorf("expected subtotal, got:\n%s", output)
	}
	if !strings.Contains(output, "Discount: -$10.00") {
		t.Errorf("expected discount, got:\n%s", output)
	}
	if !strings.Contains(output, "Total: $30.00") {
		t.Errorf("expected total, got:\n%s", output)
	}
	if !strings.Contains(output, "Computer x1 = $40.00") {
		t.Errorf("expected history line, got:\n%s", output)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	output := runScript(t, newTestService(t), "6", "1", "0")

	if !strings.Contains(output, "Checkout failed: cart is empty") {
		t.Errorf("expected empty-cart failure, got:\n%s", output)
	}
}

func TestOrderHistoryEmpty(t *testing.T) {
	output := runScript(t, newTestService(t), "7", "0")

	if !strings.Contains(output, "No orders yet.") {
		t.Errorf("expected empty history message, got:\n%s", output)
	}
}

func TestUnknownOption(t *testing.T) {
	output := runScript(t, newTestService(t), "9", "0")

	if !strings.Contains(output, "Unknown option, try again.") {
		t.Errorf("expected unknown-option message, got:\n%s", output)
	}
}
