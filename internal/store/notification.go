package store

import (
	"context"

	"github.com/ltmb786/taskboard-api/internal/domain"
)

// NotificationStore defines the interface for notification persistence.
// Notifications are write-once: there is no update operation.
type NotificationStore interface {
	// Create saves a new notification to the store.
	// Returns validation errors from the domain Notification if data is invalid.
	Create(ctx context.Context, n *domain.Notification) error

	// FindByRecipient returns all notifications addressed to the given user,
	// ordered by creation time descending (newest first). Unbounded.
	FindByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error)
}
