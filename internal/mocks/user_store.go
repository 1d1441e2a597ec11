package mocks

import (
	"context"
	"sync"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Custom behavior functions
	CreateFn           func(ctx context.Context, user *domain.User) error
	GetByIDFn          func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFn       func(ctx context.Context, email string) (*domain.User, error)
	ListFn             func(ctx context.Context) ([]*domain.User, error)
	UpdateRoleFn       func(ctx context.Context, id string, role domain.Role) error
	UpdateLastActiveFn func(ctx context.Context, id string) error

	// Default response values
	User  *domain.User
	Users []*domain.User
	Err   error

	// Call tracking for verification
	mu                    sync.Mutex
	CreateCalls           []*domain.User
	GetByIDCalls          []string
	GetByEmailCalls       []string
	ListCalls             int
	UpdateRoleCalls       []UpdateRoleCall
	UpdateLastActiveCalls []string
}

// UpdateRoleCall records the arguments of one role update.
type UpdateRoleCall struct {
	ID   string
	Role domain.Role
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, user)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	m.GetByEmailCalls = append(m.GetByEmailCalls, email)
	m.mu.Unlock()

	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, m.Err
}

func (m *MockUserStore) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	m.mu.Lock()
	m.UpdateRoleCalls = append(m.UpdateRoleCalls, UpdateRoleCall{ID: id, Role: role})
	m.mu.Unlock()

	if m.UpdateRoleFn != nil {
		return m.UpdateRoleFn(ctx, id, role)
	}
	return m.Err
}

func (m *MockUserStore) UpdateLastActive(ctx context.Context, id string) error {
	m.mu.Lock()
	m.UpdateLastActiveCalls = append(m.UpdateLastActiveCalls, id)
	m.mu.Unlock()

	if m.UpdateLastActiveFn != nil {
		return m.UpdateLastActiveFn(ctx, id)
	}
	return m.Err
}
