package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/ltmb786/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrTaskExists if the task ID is already taken.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// FindByOwner returns every task created by the given user.
	// The result is unordered and unpaginated.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)

	// Update persists the task's current editable fields.
	// Concurrent updates to the same task are last-write-wins; there is no
	// optimistic concurrency token.
	// Returns ErrTaskNotFound if no task with the ID exists.
	Update(ctx context.Context, task *domain.Task) error

	// DeleteByIDAndOwner removes a task matching both the task ID and the
	// owner ID. Returns ErrTaskNotFound when no row matches both predicates,
	// whether the task is absent or owned by someone else.
	DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID string) error
}
