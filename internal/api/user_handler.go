package api

import (
	"log/slog"
	"net/http"

	"github.com/ltmb786/taskboard-api/internal/api/shared"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/service"
)

// UserHandler handles user-directory HTTP requests
type UserHandler struct {
	userService *service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService, logger *slog.Logger) *UserHandler {
	if userService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("userService cannot be nil for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /api/users requests, returning every user with their
// tasks and task count.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	profiles, err := h.userService.ListUsers(r.Context(), identity)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]UserProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		tasks := p.Tasks
		if tasks == nil {
			tasks = []*domain.Task{}
		}
		response = append(response, UserProfileResponse{
			ID:                   p.User.ID,
			Username:             p.User.Username,
			Email:                p.User.Email,
			Avatar:               p.User.Avatar,
			NotificationsEnabled: p.User.NotificationsEnabled,
			Role:                 string(p.User.Role),
			CreatedAt:            p.User.CreatedAt,
			LastActive:           p.User.LastActive,
			Tasks:                tasks,
			TaskCount:            p.TaskCount,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
