// Package usecase drains the transactional outbox. Events are locked and processed
// in batches inside one transaction per tick.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ourshop/shop/internal/database"
	"github.com/ourshop/shop/internal/outbox/domain"
)

// Config holds outbox use case configuration
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// OutboxEventRepository defines outbox event repository operations
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
	DeleteProcessedBefore(ctx context.Context, before time.Time, dryRun bool) (int64, error)
}

// EventProcessor handles a single event.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// UseCase defines the interface for outbox use cases
type UseCase interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
	PurgeProcessed(ctx context.Context, days int, dryRun bool) (int64, error)
}

// OutboxUseCase implements business logic for processing outbox events
type OutboxUseCase struct {
	config         Config
	txManager      database.TxManager
	outboxRepo     OutboxEventRepository
	eventProcessor EventProcessor
	logger         *slog.Logger
}

// NewOutboxUseCase creates a new OutboxUseCase
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	eventProcessor EventProcessor,
	logger *slog.Logger,
) *OutboxUseCase {
	return &OutboxUseCase{
		config:         config,
		txManager:      txManager,
		outboxRepo:     outboxRepo,
		eventProcessor: eventProcessor,
		logger:         logger,
	}
}

// Start processes events every Interval until ctx is cancelled.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	if uc.logger != nil {
		uc.logger.Info("starting outbox event processor",
			slog.Duration("interval", uc.config.Interval),
			slog.Int("batch_size", uc.config.BatchSize),
		)
	}

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if uc.logger != nil {
				uc.logger.Info("stopping outbox event processor")
			}
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil && uc.logger != nil {
				uc.logger.Error("failed to process events", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents retrieves and processes pending events from the outbox in a transaction.
// A failing event has its retry count raised and becomes failed after MaxRetries.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.outboxRepo.GetPendingEvents(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		if uc.logger != nil {
			uc.logger.Info("processing events", slog.Int("count", len(events)))
		}

		for _, event := range events {
			if err := uc.eventProcessor.Process(ctx, event); err != nil {
				if uc.logger != nil {
					uc.logger.Error("failed to process event",
						slog.String("event_id", event.ID.String()),
						slog.String("event_type", event.EventType),
						slog.Any("error", err),
					)
				}

				event.Retries++
				errorMsg := err.Error()
				event.LastError = &errorMsg

				if event.Retries >= uc.config.MaxRetries {
					event.Status = domain.OutboxEventStatusFailed
				}

				if err := uc.outboxRepo.Update(ctx, event); err != nil {
					return err
				}
				continue
			}

			now := time.Now().UTC()
			event.Status = domain.OutboxEventStatusProcessed
			event.ProcessedAt = &now

			if err := uc.outboxRepo.Update(ctx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

// PurgeProcessed deletes processed events older than days. Pending and failed
// events are left alone.
func (uc *OutboxUseCase) PurgeProcessed(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, fmt.Errorf("days must be a positive number, got: %d", days)
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return uc.outboxRepo.DeleteProcessedBefore(ctx, cutoff, dryRun)
}
