package store

import (
	"context"

	"github.com/ltmb786/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrUserExists if the ID is already taken and ErrEmailExists
	// if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their identity-provider subject ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users. The result is unordered and unpaginated.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateRole changes the role stored for the given user.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateRole(ctx context.Context, id string, role domain.Role) error

	// UpdateLastActive stamps the user's last-active time.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateLastActive(ctx context.Context, id string) error
}
