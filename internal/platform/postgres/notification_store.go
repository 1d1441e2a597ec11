package postgres

import (
	"context"
	"log/slog"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/platform/logger"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// NotificationStore implements the store.NotificationStore interface
// using a PostgreSQL database as the storage backend.
type NotificationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewNotificationStore creates a new PostgreSQL implementation of the
// NotificationStore interface. If logger is nil, a default logger will
// be used.
func NewNotificationStore(db store.DBTX, logger *slog.Logger) *NotificationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationStore{
		db:     db,
		logger: logger.With(slog.String("component", "notification_store")),
	}
}

// Ensure NotificationStore implements store.NotificationStore interface
var _ store.NotificationStore = (*NotificationStore)(nil)

// Create implements store.NotificationStore.Create
func (s *NotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := n.Validate(); err != nil {
		log.Warn("notification validation failed during create",
			slog.String("error", err.Error()),
			slog.String("notification_id", n.ID.String()))
		return err
	}

	query := `
		INSERT INTO notifications (id, task_id, recipient_id, action, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		n.ID,
		n.TaskID,
		n.RecipientID,
		n.Action,
		n.Title,
		n.Body,
		n.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create notification",
			slog.String("error", err.Error()),
			slog.String("notification_id", n.ID.String()),
			slog.String("recipient_id", n.RecipientID))
		return MapError(err)
	}

	log.Info("notification created successfully",
		slog.String("notification_id", n.ID.String()),
		slog.String("recipient_id", n.RecipientID),
		slog.String("action", n.Action))
	return nil
}

// FindByRecipient implements store.NotificationStore.FindByRecipient
// Results come back newest first.
func (s *NotificationStore) FindByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, task_id, recipient_id, action, title, body, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		log.Error("failed to find notifications by recipient",
			slog.String("error", err.Error()),
			slog.String("recipient_id", recipientID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID,
			&n.TaskID,
			&n.RecipientID,
			&n.Action,
			&n.Title,
			&n.Body,
			&n.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan notification row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return notifications, nil
}
