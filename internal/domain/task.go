package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusToDo       TaskStatus = "To do"
	TaskStatusInProgress TaskStatus = "In progress"
	TaskStatusDone       TaskStatus = "Done"
	TaskStatusCanceled   TaskStatus = "Canceled"
)

// Priority is a task priority level between 1 (low) and 3 (high).
type Priority int

// Priority levels.
const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Common validation errors for Task. Each wraps ErrValidation so callers
// can classify them with errors.Is.
var (
	ErrEmptyTaskID          = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle       = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrEmptyTaskDescription = fmt.Errorf("%w: task description cannot be empty", ErrValidation)
	ErrEmptyTaskOwner       = fmt.Errorf("%w: task owner cannot be empty", ErrValidation)
	ErrInvalidTaskStatus    = fmt.Errorf("%w: invalid task status", ErrValidation)
)

// Task represents a unit of work created and owned by a single user.
// The owner is fixed at creation time and never changes; only the owner
// may update or delete the task.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	OwnerID     string     `json:"createdBy"`
	Category    string     `json:"category"`
	Attachments []string   `json:"attachments"`
	Completed   bool       `json:"completed"`
}

// NewTask creates a new Task owned by the given user.
// It generates a fresh task ID, normalizes the priority, defaults the
// status to "To do" when unset, and stamps creation/update times.
// The ownerID is the verified caller identity; any client-supplied owner
// must be discarded before reaching this constructor.
// Returns an error if validation fails.
func NewTask(ownerID, title, description string, priority any) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      TaskStatusToDo,
		Priority:    NormalizePriority(priority),
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     ownerID,
		Attachments: []string{},
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if t.OwnerID == "" {
		return ErrEmptyTaskOwner
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// TaskUpdate carries the full editable field set for a task update.
// Updates re-submit every editable field; Attachments only replace the
// stored list when non-empty, otherwise the existing list is preserved.
type TaskUpdate struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    any
	DueDate     *time.Time
	AssignedTo  string
	Category    string
	Completed   bool
	Attachments []string
}

// Apply merges the update into the task and re-stamps the update time.
// The task's ID, owner, and creation time are never touched.
func (t *Task) Apply(u TaskUpdate) {
	t.Title = u.Title
	t.Description = u.Description
	if u.Status != "" && isValidTaskStatus(u.Status) {
		t.Status = u.Status
	}
	t.Priority = NormalizePriority(u.Priority)
	t.DueDate = u.DueDate
	t.AssignedTo = u.AssignedTo
	t.Category = u.Category
	t.Completed = u.Completed
	if len(u.Attachments) > 0 {
		t.Attachments = u.Attachments
	}
	t.UpdatedAt = time.Now().UTC()
}

// NormalizePriority maps any client-supplied priority value onto a valid
// Priority. Accepted synonyms are low/medium/high and the numeric or string
// forms of 1/2/3; anything unrecognized (including nil) normalizes to low.
// The mapping is total and idempotent.
func NormalizePriority(v any) Priority {
	switch p := v.(type) {
	case Priority:
		if p >= PriorityLow && p <= PriorityHigh {
			return p
		}
	case int:
		if p >= 1 && p <= 3 {
			return Priority(p)
		}
	case int64:
		if p >= 1 && p <= 3 {
			return Priority(p)
		}
	case float64:
		// JSON numbers decode as float64
		if p == 1 || p == 2 || p == 3 {
			return Priority(p)
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "low", "1":
			return PriorityLow
		case "medium", "2":
			return PriorityMedium
		case "high", "3":
			return PriorityHigh
		}
	}
	return PriorityLow
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled:
		return true
	default:
		return false
	}
}
