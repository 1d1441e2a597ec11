package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewNotification(t *testing.T) {
	t.Parallel()

	n, err := NewNotification("task-1", "user-1", "assigned", "New task", "You were assigned")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if n.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if n.TaskID != "task-1" || n.RecipientID != "user-1" {
		t.Errorf("Expected references to be kept, got task=%s recipient=%s", n.TaskID, n.RecipientID)
	}

	if n.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Every field is required.
	cases := []struct {
		name    string
		args    [5]string
		wantErr error
	}{
		{"missing task", [5]string{"", "user-1", "assigned", "title", "body"}, ErrEmptyNotificationTaskID},
		{"missing recipient", [5]string{"task-1", "", "assigned", "title", "body"}, ErrEmptyNotificationRecipient},
		{"missing action", [5]string{"task-1", "user-1", "", "title", "body"}, ErrEmptyNotificationAction},
		{"missing title", [5]string{"task-1", "user-1", "assigned", "", "body"}, ErrEmptyNotificationTitle},
		{"missing body", [5]string{"task-1", "user-1", "assigned", "title", ""}, ErrEmptyNotificationBody},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewNotification(tt.args[0], tt.args[1], tt.args[2], tt.args[3], tt.args[4])
			if err != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
