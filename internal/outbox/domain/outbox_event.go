// Package domain defines lifecycle events recorded in the transactional outbox.
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus represents the status of an outbox event
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// Event types. Payloads identify principals only and never carry a password in any
// form.
const (
	EventTypeUserCreated           = "user.created"
	EventTypeCustomerPasswordReset = "customer.password_reset"
	EventTypePurchaseCompleted     = "purchase.completed"
)

// OutboxEvent represents an event in the transactional outbox pattern
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserCreatedPayload is the payload of EventTypeUserCreated.
type UserCreatedPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Type     string    `json:"type"`
}

// PasswordResetPayload is the payload of EventTypeCustomerPasswordReset.
type PasswordResetPayload struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Email      string    `json:"email"`
}

// PurchaseCompletedPayload is the payload of EventTypePurchaseCompleted.
type PurchaseCompletedPayload struct {
	CustomerID uuid.UUID `json:"customer_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Amount     int       `json:"amount"`
	Total      float64   `json:"total"`
}

// NewOutboxEvent builds a pending event with a JSON payload.
func NewOutboxEvent(eventType string, payload any) (*OutboxEvent, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	now := time.Now().UTC()
	return &OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   string(payloadJSON),
		Status:    OutboxEventStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
