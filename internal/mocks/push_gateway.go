package mocks

import (
	"context"
	"sync"

	"github.com/ltmb786/taskboard-api/internal/platform/push"
)

// MockPushGateway implements push.Gateway for testing
type MockPushGateway struct {
	// Custom behavior function
	SendFn func(ctx context.Context, msg push.Message, deviceToken string) error

	// Default response value
	Err error

	// Call tracking for verification
	mu        sync.Mutex
	SendCalls []SendCall
}

// SendCall records the arguments of one push delivery.
type SendCall struct {
	Message     push.Message
	DeviceToken string
}

// Ensure MockPushGateway implements push.Gateway
var _ push.Gateway = (*MockPushGateway)(nil)

func (m *MockPushGateway) Send(ctx context.Context, msg push.Message, deviceToken string) error {
	m.mu.Lock()
	m.SendCalls = append(m.SendCalls, SendCall{Message: msg, DeviceToken: deviceToken})
	m.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, msg, deviceToken)
	}
	return m.Err
}
