package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltmb786/taskboard-api/internal/api/shared"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/mocks"
	"github.com/ltmb786/taskboard-api/internal/service"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// withIdentity returns the request with a verified identity in its context,
// the way the auth middleware would leave it.
func withIdentity(req *http.Request, subjectID string, role domain.Role) *http.Request {
	identity := &auth.Identity{SubjectID: subjectID, Role: role}
	return req.WithContext(context.WithValue(req.Context(), shared.IdentityContextKey, identity))
}

func taskTestRouter(taskStore *mocks.MockTaskStore) chi.Router {
	handler := NewTaskHandler(service.NewTaskService(taskStore, nil), nil)

	r := chi.NewRouter()
	r.Post("/api/tasks", handler.Create)
	r.Get("/api/tasks/{userId}", handler.ListByUser)
	r.Put("/api/tasks/{id}", handler.Update)
	r.Delete("/api/tasks/{id}", handler.Delete)
	return r
}

func TestTaskCreate(t *testing.T) {
	taskStore := &mocks.MockTaskStore{}
	router := taskTestRouter(taskStore)

	body, _ := json.Marshal(map[string]any{
		"title":       "Ship release",
		"description": "Cut the v2 tag",
		"priority":    "high",
		"createdBy":   "spoofed-user",
	})
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body)),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created domain.Task
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, "alice", created.OwnerID, "createdBy in the body must not win")
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, domain.TaskStatusToDo, created.Status)
}

func TestTaskCreate_NoIdentity(t *testing.T) {
	taskStore := &mocks.MockTaskStore{}
	router := taskTestRouter(taskStore)

	body, _ := json.Marshal(map[string]any{"title": "Task"})
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, taskStore.CreateCalls)
}

func TestTaskCreate_MissingTitle(t *testing.T) {
	router := taskTestRouter(&mocks.MockTaskStore{})

	body, _ := json.Marshal(map[string]any{"description": "no title"})
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body)),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTaskCreate_MissingDescription(t *testing.T) {
	taskStore := &mocks.MockTaskStore{}
	router := taskTestRouter(taskStore)

	body, _ := json.Marshal(map[string]any{"title": "No description"})
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body)),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
	assert.Empty(t, taskStore.CreateCalls)
}

func TestTaskCreate_MalformedJSON(t *testing.T) {
	router := taskTestRouter(&mocks.MockTaskStore{})

	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader([]byte("{not json"))),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTaskListByUser(t *testing.T) {
	now := time.Now().UTC()
	taskStore := &mocks.MockTaskStore{Tasks: []*domain.Task{
		{ID: uuid.New(), Title: "One", Status: domain.TaskStatusToDo, Priority: domain.PriorityLow, OwnerID: "alice", CreatedAt: now, UpdatedAt: now},
	}}
	router := taskTestRouter(taskStore)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/tasks/alice", nil), "bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var tasks []*domain.Task
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "One", tasks[0].Title)
	assert.Equal(t, []string{"alice"}, taskStore.FindByOwnerCalls)
}

func TestTaskListByUser_EmptyIsArray(t *testing.T) {
	router := taskTestRouter(&mocks.MockTaskStore{})

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/tasks/alice", nil), "bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestTaskUpdate_NonOwnerForbidden(t *testing.T) {
	taskID := uuid.New()
	taskStore := &mocks.MockTaskStore{Task: &domain.Task{
		ID:       taskID,
		Title:    "Alice's task",
		Status:   domain.TaskStatusToDo,
		Priority: domain.PriorityLow,
		OwnerID:  "alice",
	}}
	router := taskTestRouter(taskStore)

	body, _ := json.Marshal(map[string]any{"title": "Hijack", "description": "Someone else's task"})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/tasks/"+taskID.String(), bytes.NewReader(body)),
		"bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, taskStore.UpdateCalls)
}

func TestTaskUpdate_Owner(t *testing.T) {
	taskID := uuid.New()
	taskStore := &mocks.MockTaskStore{Task: &domain.Task{
		ID:       taskID,
		Title:    "Old",
		Status:   domain.TaskStatusToDo,
		Priority: domain.PriorityLow,
		OwnerID:  "alice",
	}}
	router := taskTestRouter(taskStore)

	body, _ := json.Marshal(map[string]any{"title": "New", "description": "Refreshed", "status": "Done", "completed": true})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/tasks/"+taskID.String(), bytes.NewReader(body)),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated domain.Task
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)
	assert.True(t, updated.Completed)
}

func TestTaskUpdate_BadID(t *testing.T) {
	router := taskTestRouter(&mocks.MockTaskStore{})

	body, _ := json.Marshal(map[string]any{"title": "New", "description": "Refreshed"})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/tasks/not-a-uuid", bytes.NewReader(body)),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTaskDelete(t *testing.T) {
	taskID := uuid.New()
	taskStore := &mocks.MockTaskStore{}
	router := taskTestRouter(taskStore)

	req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/tasks/"+taskID.String(), nil),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, taskStore.DeleteCalls, 1)
	assert.Equal(t, "alice", taskStore.DeleteCalls[0].OwnerID)
}

func TestTaskDelete_ForeignTaskIs404(t *testing.T) {
	taskStore := &mocks.MockTaskStore{
		DeleteByIDAndOwnerFn: func(_ context.Context, _ uuid.UUID, _ string) error {
			return store.ErrTaskNotFound
		},
	}
	router := taskTestRouter(taskStore)

	req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/tasks/"+uuid.New().String(), nil),
		"bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Task not found or unauthorized")
}
