package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/platform/logger"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
	"github.com/ltmb786/taskboard-api/internal/service/authz"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// UserProfile pairs a user record with the tasks they have created, the
// shape the user directory endpoint returns.
type UserProfile struct {
	User      *domain.User
	Tasks     []*domain.Task
	TaskCount int
}

// UserService handles registration, login lookup, the user directory, and
// role administration.
type UserService struct {
	users    store.UserStore
	tasks    store.TaskStore
	provider auth.IdentityProvider
	issuer   auth.TokenIssuer
	logger   *slog.Logger
}

// NewUserService creates a new UserService.
// If logger is nil, a default logger will be used.
func NewUserService(
	users store.UserStore,
	tasks store.TaskStore,
	provider auth.IdentityProvider,
	issuer auth.TokenIssuer,
	logger *slog.Logger,
) *UserService {
	if users == nil {
		panic("users store cannot be nil")
	}
	if tasks == nil {
		panic("tasks store cannot be nil")
	}
	if provider == nil {
		panic("provider cannot be nil")
	}
	if issuer == nil {
		panic("issuer cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		users:    users,
		tasks:    tasks,
		provider: provider,
		issuer:   issuer,
		logger:   logger.With(slog.String("component", "user_service")),
	}
}

// Register creates a new identity at the provider, mirrors it as a user
// record, and sets the initial role claim. New users always get the "user"
// role. Returns the stored user and a bearer token for immediate use.
func (s *UserService) Register(ctx context.Context, email, password, username string) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	subjectID, err := s.provider.CreateIdentity(ctx, email, password, username)
	if err != nil {
		return nil, "", err
	}

	user, err := domain.NewUser(subjectID, username, email)
	if err != nil {
		return nil, "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.provider.SetClaims(ctx, subjectID, map[string]any{"role": string(user.Role)}); err != nil {
		// The mirrored record exists; the claim set lags until a retry.
		log.Error("failed to set initial role claim",
			slog.String("error", err.Error()),
			slog.String("user_id", subjectID))
		return nil, "", fmt.Errorf("%w: identity provider claim update: %v", store.ErrDependency, err)
	}

	token, err := s.issuer.IssueToken(ctx, subjectID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: token issuance: %v", store.ErrDependency, err)
	}

	log.Info("user registered", slog.String("user_id", subjectID))
	return user, token, nil
}

// Login authenticates an email/password pair against the provider, stamps
// the user's activity, and issues a fresh bearer token.
// Returns auth.ErrInvalidCredentials on a mismatch and store.ErrUserNotFound
// when the identity has no mirrored user record.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	subjectID, err := s.issuer.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	// The mirrored record is resolved by the credential email, not the
	// subject id, so a stale mirror surfaces here rather than later.
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := s.users.UpdateLastActive(ctx, subjectID); err != nil {
		// Activity stamping is not worth failing a login over.
		log.Warn("failed to update last active",
			slog.String("error", err.Error()),
			slog.String("user_id", subjectID))
	}

	token, err := s.issuer.IssueToken(ctx, subjectID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: token issuance: %v", store.ErrDependency, err)
	}

	log.Info("user logged in", slog.String("user_id", subjectID))
	return user, token, nil
}

// ListUsers returns the user directory with each user's tasks and task
// count. Open to any authenticated caller.
func (s *UserService) ListUsers(ctx context.Context, identity *auth.Identity) ([]*UserProfile, error) {
	if err := authz.Authorize(identity, authz.ReadUsers()); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*UserProfile, 0, len(users))
	for _, user := range users {
		tasks, err := s.tasks.FindByOwner(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, &UserProfile{
			User:      user,
			Tasks:     tasks,
			TaskCount: len(tasks),
		})
	}

	return profiles, nil
}

// SetRole changes a user's role in the store and propagates the new role to
// the identity provider's claim set, keeping the two consistent.
//
// Only admins may call this. The two writes are sequential with no
// compensating transaction: if claim propagation fails after the store
// write, the call returns a dependency failure and the same call can be
// re-driven safely since both writes are idempotent for a given role.
func (s *UserService) SetRole(ctx context.Context, identity *auth.Identity, targetUserID string, newRole domain.Role) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := authz.Authorize(identity, authz.ChangeRole()); err != nil {
		return nil, err
	}

	if !newRole.IsValid() {
		return nil, domain.NewValidationError("role", "must be \"user\" or \"admin\"", domain.ErrInvalidRole)
	}

	if err := s.users.UpdateRole(ctx, targetUserID, newRole); err != nil {
		return nil, err
	}

	if err := s.provider.SetClaims(ctx, targetUserID, map[string]any{"role": string(newRole)}); err != nil {
		// Store and provider now disagree until this call is retried.
		log.Error("role claim propagation failed",
			slog.String("error", err.Error()),
			slog.String("target_user_id", targetUserID),
			slog.String("role", string(newRole)))
		return nil, NewServiceError("user", "set_role",
			"role stored but claim propagation failed; retry the call",
			fmt.Errorf("%w: %v", store.ErrDependency, err))
	}

	user, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	log.Info("role changed",
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(newRole)),
		slog.String("changed_by", identitySubject(identity)))
	return user, nil
}
