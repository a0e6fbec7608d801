package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkovacevic/minishop/internal/cli"
	"github.com/dkovacevic/minishop/internal/config"
	idemmemory "github.com/dkovacevic/minishop/internal/idempotency/memory"
	"github.com/dkovacevic/minishop/internal/kafka"
	"github.com/dkovacevic/minishop/internal/shop/adapters/memory"
	"github.com/dkovacevic/minishop/internal/shop/app"
	"github.com/dkovacevic/minishop/internal/shop/domain"
	shopmetrics "github.com/dkovacevic/minishop/internal/shop/metrics"
	"go.opentelemetry.io/otel"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := memory.NewCatalog()
	for _, p := range seedProducts() {
		if err := catalog.Add(ctx, p); err != nil {
			logger.Error("failed to seed catalog", "error", err)
			os.Exit(1)
		}
	}

	meter := otel.Meter("minishop-cli")
	metrics, err := shopmetrics.NewMetrics(meter)
	if err != nil {
		logger.Error("failed to create metrics", "error", err)
		os.Exit(1)
	}

	service := app.NewService(
		cfg.Service.UserName,
		catalog,
		memory.NewHistory(),
		kafka.NewNoopEventBus(),
		idemmemory.NewStore(),
		logger,
		metrics,
	)

	shell := cli.New(service, os.Stdin, os.Stdout)
	if err := shell.Run(ctx); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Tablet", Category: "Digital", PriceCents: 2000, Stock: 5},
		{ID: 2, Name: "Computer", Category: "Digital", PriceCents: 4000, Stock: 3},
		{ID: 3, Name: "Mouse", Category: "Accessories", PriceCents: 550, Stock: 10},
	}
}
