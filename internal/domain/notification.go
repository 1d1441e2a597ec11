package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Notification. Each wraps ErrValidation so
// callers can classify them with errors.Is.
var (
	ErrEmptyNotificationID        = fmt.Errorf("%w: notification ID cannot be empty", ErrValidation)
	ErrEmptyNotificationTaskID    = fmt.Errorf("%w: notification task ID cannot be empty", ErrValidation)
	ErrEmptyNotificationRecipient = fmt.Errorf("%w: notification recipient cannot be empty", ErrValidation)
	ErrEmptyNotificationAction    = fmt.Errorf("%w: notification action cannot be empty", ErrValidation)
	ErrEmptyNotificationTitle     = fmt.Errorf("%w: notification title cannot be empty", ErrValidation)
	ErrEmptyNotificationBody      = fmt.Errorf("%w: notification body cannot be empty", ErrValidation)
)

// Notification records that a task-affecting action happened and who should
// hear about it. Records are write-once: created exactly once per qualifying
// action, never updated, and read back newest-first per recipient.
//
// Persistence of the record is the durability contract; push delivery is
// best-effort on top of it.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	TaskID      string    `json:"taskId"`
	RecipientID string    `json:"userId"`
	Action      string    `json:"action"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewNotification creates a new Notification for the given task action.
// It generates a fresh ID and stamps the creation time.
// Returns an error if validation fails.
func NewNotification(taskID, recipientID, action, title, body string) (*Notification, error) {
	n := &Notification{
		ID:          uuid.New(),
		TaskID:      taskID,
		RecipientID: recipientID,
		Action:      action,
		Title:       title,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate checks if the Notification has valid data.
// Returns an error if any field fails validation.
func (n *Notification) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyNotificationID
	}

	if n.TaskID == "" {
		return ErrEmptyNotificationTaskID
	}

	if n.RecipientID == "" {
		return ErrEmptyNotificationRecipient
	}

	if n.Action == "" {
		return ErrEmptyNotificationAction
	}

	if n.Title == "" {
		return ErrEmptyNotificationTitle
	}

	if n.Body == "" {
		return ErrEmptyNotificationBody
	}

	return nil
}
