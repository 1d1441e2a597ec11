package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/platform/logger"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
	"github.com/ltmb786/taskboard-api/internal/service/authz"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// CreateTaskInput carries the client-supplied fields for task creation.
// RequestedOwner is whatever owner the client claimed; it is recorded for
// the audit log and then discarded; the stored owner is always the caller.
type CreateTaskInput struct {
	Title          string
	Description    string
	Status         domain.TaskStatus
	Priority       any
	DueDate        *time.Time
	AssignedTo     string
	Category       string
	Attachments    []string
	RequestedOwner string
}

// UpdateTaskInput carries the full editable field set for a task update,
// plus the optional replacement attachment list.
type UpdateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    any
	DueDate     *time.Time
	AssignedTo  string
	Category    string
	Completed   bool
	Attachments []string
}

// TaskService is the task lifecycle manager. Every operation re-fetches
// state from the store; nothing is cached between calls, so concurrent
// requests race only at the store level (last write wins).
type TaskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// If logger is nil, a default logger will be used.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) *TaskService {
	if tasks == nil {
		panic("tasks store cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}
}

// CreateTask creates a new task owned by the caller. The owner is forced
// to the verified identity before persistence regardless of any owner value
// in the input. Status defaults to "To do" and priority normalizes per the
// fixed mapping. Returns the stored record.
func (s *TaskService) CreateTask(ctx context.Context, identity *auth.Identity, input CreateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := authz.Authorize(identity, authz.CreateTask()); err != nil {
		return nil, err
	}

	ownerID := authz.ForceOwner(identity)
	if input.RequestedOwner != "" && input.RequestedOwner != ownerID {
		log.Warn("client-supplied task owner discarded",
			slog.String("requested_owner", input.RequestedOwner),
			slog.String("caller_id", ownerID))
	}

	task, err := domain.NewTask(ownerID, input.Title, input.Description, input.Priority)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		task.Status = input.Status
	}
	task.DueDate = input.DueDate
	task.AssignedTo = input.AssignedTo
	task.Category = input.Category
	if len(input.Attachments) > 0 {
		task.Attachments = input.Attachments
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", ownerID))
	return task, nil
}

// ListTasks returns the tasks created by the given user. Any authenticated
// caller may read another user's task list, matching the profile-read policy.
func (s *TaskService) ListTasks(ctx context.Context, identity *auth.Identity, ownerID string) ([]*domain.Task, error) {
	if err := authz.Authorize(identity, authz.ReadUsers()); err != nil {
		return nil, err
	}

	return s.tasks.FindByOwner(ctx, ownerID)
}

// UpdateTask updates an existing task with the full editable field set.
// The stored owner is re-fetched and checked against the caller before any
// write; a non-owner is rejected with domain.ErrForbidden and the store is
// never touched. Attachments are replaced only when the input carries a
// non-empty list. Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskService) UpdateTask(ctx context.Context, identity *auth.Identity, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(identity, authz.UpdateTask(task.OwnerID)); err != nil {
		log.Warn("task update denied",
			slog.String("task_id", taskID.String()),
			slog.String("caller_id", identitySubject(identity)))
		return nil, err
	}

	task.Apply(domain.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
		Category:    input.Category,
		Completed:   input.Completed,
		Attachments: input.Attachments,
	})

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	log.Info("task updated", slog.String("task_id", taskID.String()))
	return task, nil
}

// DeleteTask deletes a task owned by the caller. Ownership is enforced by
// the store's combined id+owner predicate: a non-owner delete returns
// store.ErrTaskNotFound exactly like a delete of a nonexistent task, so the
// caller learns nothing about the task's existence.
func (s *TaskService) DeleteTask(ctx context.Context, identity *auth.Identity, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := authz.Authorize(identity, authz.DeleteTask(identitySubject(identity))); err != nil {
		return err
	}

	if err := s.tasks.DeleteByIDAndOwner(ctx, taskID, identitySubject(identity)); err != nil {
		return err
	}

	log.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", identitySubject(identity)))
	return nil
}

// identitySubject returns the subject ID of a possibly-nil identity.
func identitySubject(identity *auth.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.SubjectID
}
