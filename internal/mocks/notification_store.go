package mocks

import (
	"context"
	"sync"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// MockNotificationStore implements store.NotificationStore for testing
type MockNotificationStore struct {
	// Custom behavior functions
	CreateFn          func(ctx context.Context, n *domain.Notification) error
	FindByRecipientFn func(ctx context.Context, recipientID string) ([]*domain.Notification, error)

	// Default response values
	Notifications []*domain.Notification
	Err           error

	// Call tracking for verification
	mu                   sync.Mutex
	CreateCalls          []*domain.Notification
	FindByRecipientCalls []string
}

// Ensure MockNotificationStore implements store.NotificationStore
var _ store.NotificationStore = (*MockNotificationStore)(nil)

func (m *MockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, n)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return m.Err
}

func (m *MockNotificationStore) FindByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	m.mu.Lock()
	m.FindByRecipientCalls = append(m.FindByRecipientCalls, recipientID)
	m.mu.Unlock()

	if m.FindByRecipientFn != nil {
		return m.FindByRecipientFn(ctx, recipientID)
	}
	return m.Notifications, m.Err
}
