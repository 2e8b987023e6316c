package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ourshop/shop/internal/app"
	"github.com/ourshop/shop/internal/config"
	outboxUseCase "github.com/ourshop/shop/internal/outbox/usecase"
)

// RunWorker drains the outbox until SIGINT/SIGTERM.
func RunWorker(ctx context.Context, version string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting outbox worker", slog.String("version", version))

	defer closeContainer(container, logger)

	useCase, err := container.OutboxUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize outbox use case: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runOutboxLoop(ctx, useCase)
}

// runOutboxLoop treats cancellation as a clean stop.
func runOutboxLoop(ctx context.Context, useCase outboxUseCase.UseCase) error {
	if err := useCase.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox worker error: %w", err)
	}
	return nil
}
