package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	CreateFn             func(ctx context.Context, task *domain.Task) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByOwnerFn        func(ctx context.Context, ownerID string) ([]*domain.Task, error)
	UpdateFn             func(ctx context.Context, task *domain.Task) error
	DeleteByIDAndOwnerFn func(ctx context.Context, id uuid.UUID, ownerID string) error

	// Default response values
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error

	// Call tracking for verification
	mu                  sync.Mutex
	CreateCalls         []*domain.Task
	GetByIDCalls        []uuid.UUID
	FindByOwnerCalls    []string
	UpdateCalls         []*domain.Task
	DeleteCalls         []DeleteByIDAndOwnerCall
}

// DeleteByIDAndOwnerCall records the arguments of one delete call.
type DeleteByIDAndOwnerCall struct {
	ID      uuid.UUID
	OwnerID string
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, task)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.Err
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	m.mu.Lock()
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Task, m.Err
}

func (m *MockTaskStore) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	m.mu.Lock()
	m.FindByOwnerCalls = append(m.FindByOwnerCalls, ownerID)
	m.mu.Unlock()

	if m.FindByOwnerFn != nil {
		return m.FindByOwnerFn(ctx, ownerID)
	}
	return m.Tasks, m.Err
}

func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, task)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.Err
}

func (m *MockTaskStore) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, DeleteByIDAndOwnerCall{ID: id, OwnerID: ownerID})
	m.mu.Unlock()

	if m.DeleteByIDAndOwnerFn != nil {
		return m.DeleteByIDAndOwnerFn(ctx, id, ownerID)
	}
	return m.Err
}
