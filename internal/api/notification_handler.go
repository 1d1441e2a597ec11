package api

import (
	"log/slog"
	"net/http"

	"github.com/ltmb786/taskboard-api/internal/api/shared"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/platform/logger"
	"github.com/ltmb786/taskboard-api/internal/service"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *service.NotificationService
	logger              *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *service.NotificationService, logger *slog.Logger) *NotificationHandler {
	if notificationService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("notificationService cannot be nil for NotificationHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger.With(slog.String("component", "notification_handler")),
	}
}

// Create handles POST /api/notifications requests. The record persists even
// when push delivery is impossible or fails.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateNotificationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	notification, err := h.notificationService.Notify(r.Context(), identity,
		req.TaskID, req.UserID, req.Action, req.Title, req.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("notification created",
		slog.String("notification_id", notification.ID.String()),
		slog.String("recipient_id", req.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, notification)
}

// ListByUser handles GET /api/notifications/{userId} requests, returning the
// user's notifications newest first.
func (h *NotificationHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	userID := pathUserID(r)
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID is required")
		return
	}

	notifications, err := h.notificationService.ListForUser(r.Context(), identity, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, notifications)
}
