package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ourshop/shop/internal/metrics"
	"github.com/ourshop/shop/internal/outbox/domain"
)

// LifecycleEventProcessor records principal lifecycle and purchase events in the audit
// log and as business metrics.
type LifecycleEventProcessor struct {
	metrics metrics.BusinessMetrics
	logger  *slog.Logger
}

// NewLifecycleEventProcessor creates a new LifecycleEventProcessor
func NewLifecycleEventProcessor(m metrics.BusinessMetrics, logger *slog.Logger) *LifecycleEventProcessor {
	return &LifecycleEventProcessor{
		metrics: m,
		logger:  logger,
	}
}

// Process decodes the payload of a known event type. Malformed payloads are errors and
// go through the retry path; unknown types are logged and dropped.
func (p *LifecycleEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	switch event.EventType {
	case domain.EventTypeUserCreated:
		var payload domain.UserCreatedPayload
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return fmt.Errorf("invalid %s payload: %w", event.EventType, err)
		}
		p.logger.Info("user created",
			slog.String("event_id", event.ID.String()),
			slog.String("user_id", payload.UserID.String()),
			slog.String("username", payload.Username),
			slog.String("type", payload.Type),
		)

	case domain.EventTypeCustomerPasswordReset:
		var payload domain.PasswordResetPayload
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return fmt.Errorf("invalid %s payload: %w", event.EventType, err)
		}
		p.logger.Info("customer password reset",
			slog.String("event_id", event.ID.String()),
			slog.String("customer_id", payload.CustomerID.String()),
		)

	case domain.EventTypePurchaseCompleted:
		var payload domain.PurchaseCompletedPayload
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return fmt.Errorf("invalid %s payload: %w", event.EventType, err)
		}
		p.logger.Info("purchase completed",
			slog.String("event_id", event.ID.String()),
			slog.String("customer_id", payload.CustomerID.String()),
			slog.String("product_id", payload.ProductID.String()),
			slog.Int("amount", payload.Amount),
			slog.Float64("total", payload.Total),
		)

	default:
		p.logger.Warn("unknown event type", slog.String("event_type", event.EventType))
		return nil
	}

	p.metrics.RecordOperation(ctx, metrics.DomainOutbox, event.EventType, "processed")
	return nil
}
