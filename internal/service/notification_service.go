package service

import (
	"context"
	"log/slog"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/platform/logger"
	"github.com/ltmb786/taskboard-api/internal/platform/push"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
	"github.com/ltmb786/taskboard-api/internal/service/authz"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// NotificationService is the notification dispatcher. The persisted record
// is the durability contract; push delivery rides on top of it best-effort.
type NotificationService struct {
	notifications store.NotificationStore
	users         store.UserStore
	gateway       push.Gateway
	logger        *slog.Logger
}

// NewNotificationService creates a new NotificationService.
// If logger is nil, a default logger will be used.
func NewNotificationService(
	notifications store.NotificationStore,
	users store.UserStore,
	gateway push.Gateway,
	logger *slog.Logger,
) *NotificationService {
	if notifications == nil {
		panic("notifications store cannot be nil")
	}
	if users == nil {
		panic("users store cannot be nil")
	}
	if gateway == nil {
		panic("gateway cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationService{
		notifications: notifications,
		users:         users,
		gateway:       gateway,
		logger:        logger.With(slog.String("component", "notification_service")),
	}
}

// Notify records that a task action happened and relays it to the
// recipient's device when possible.
//
// All fields are required (domain validation errors otherwise). The
// recipient must exist (store.ErrUserNotFound otherwise). Once the
// recipient is confirmed the record is persisted unconditionally; the push
// is attempted only when the recipient has a registered token and has
// notifications enabled, and a gateway failure is logged without failing
// the call or rolling anything back.
func (s *NotificationService) Notify(ctx context.Context, identity *auth.Identity, taskID, recipientID, action, title, body string) (*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := authz.Authorize(identity, authz.PostNotification()); err != nil {
		return nil, err
	}

	notification, err := domain.NewNotification(taskID, recipientID, action, title, body)
	if err != nil {
		return nil, err
	}

	recipient, err := s.users.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	if recipient.PushToken != "" && recipient.NotificationsEnabled {
		msg := push.Message{Title: title, Body: body}
		if err := s.gateway.Send(ctx, msg, recipient.PushToken); err != nil {
			// Best-effort: the persisted record stands regardless.
			log.Warn("push delivery failed",
				slog.String("error", err.Error()),
				slog.String("notification_id", notification.ID.String()),
				slog.String("recipient_id", recipientID))
		} else {
			log.Debug("push delivered",
				slog.String("notification_id", notification.ID.String()),
				slog.String("recipient_id", recipientID))
		}
	}

	return notification, nil
}

// ListForUser returns the given user's notifications, newest first.
// Recipient scoping comes from the query itself; any authenticated caller
// may ask for any feed.
func (s *NotificationService) ListForUser(ctx context.Context, identity *auth.Identity, userID string) ([]*domain.Notification, error) {
	if err := authz.Authorize(identity, authz.ListNotifications()); err != nil {
		return nil, err
	}

	return s.notifications.FindByRecipient(ctx, userID)
}
