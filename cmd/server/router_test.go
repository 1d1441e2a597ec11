package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltmb786/taskboard-api/internal/config"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/mocks"
	"github.com/ltmb786/taskboard-api/internal/platform/push"
	"github.com/ltmb786/taskboard-api/internal/service"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
)

// testApplication wires the router against in-memory mocks and a real
// token provider, skipping only the database.
func testApplication(t *testing.T) (*application, *mocks.MockUserStore, *mocks.MockTaskStore) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:            "0123456789abcdef0123456789abcdef",
			TokenLifetimeMinutes: 60,
		},
	}

	provider, err := auth.NewJWTProvider(cfg.Auth)
	require.NoError(t, err)

	userStore := &mocks.MockUserStore{}
	taskStore := &mocks.MockTaskStore{}
	notificationStore := &mocks.MockNotificationStore{}
	logger := slog.Default()

	app := &application{
		config:            cfg,
		logger:            logger,
		userStore:         userStore,
		taskStore:         taskStore,
		notificationStore: notificationStore,
		identityProvider:  provider,
		tokenIssuer:       provider,
	}
	app.userService = service.NewUserService(userStore, taskStore, provider, provider, logger)
	app.taskService = service.NewTaskService(taskStore, logger)
	app.notificationService = service.NewNotificationService(notificationStore, userStore, push.NoopGateway{}, logger)

	return app, userStore, taskStore
}

func TestHealthEndpoint(t *testing.T) {
	app, _, _ := testApplication(t)
	router := app.setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app, _, _ := testApplication(t)
	router := app.setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRegisterThenCreateTask(t *testing.T) {
	app, userStore, taskStore := testApplication(t)
	router := app.setupRouter()

	// Register a user and capture the issued token.
	registerBody, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "s3cretpass",
		"username": "alice",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(registerBody)))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var authResp struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&authResp))
	require.NotEmpty(t, authResp.Token)
	require.Len(t, userStore.CreateCalls, 1)

	// Use the token to create a task through the protected route.
	taskBody, _ := json.Marshal(map[string]any{
		"title":       "First task",
		"description": "Kick the tires",
		"priority":    "medium",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(taskBody))
	req.Header.Set("Authorization", "Bearer "+authResp.Token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created domain.Task
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, authResp.UserID, created.OwnerID, "task owner is the registered caller")
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	require.Len(t, taskStore.CreateCalls, 1)
}

func TestRoleChangeVisibleWithOldToken(t *testing.T) {
	app, userStore, _ := testApplication(t)
	router := app.setupRouter()

	// Register a regular user.
	registerBody, _ := json.Marshal(map[string]string{
		"email":    "bob@example.com",
		"password": "s3cretpass",
		"username": "bob",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(registerBody)))
	require.Equal(t, http.StatusCreated, rr.Code)

	var authResp struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&authResp))

	// A plain user may not change roles.
	roleBody, _ := json.Marshal(map[string]string{"role": "admin"})
	req := httptest.NewRequest(http.MethodPut, "/api/auth/update-role/"+authResp.UserID, bytes.NewReader(roleBody))
	req.Header.Set("Authorization", "Bearer "+authResp.Token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusForbidden, rr.Code)

	// Promote the user directly through the provider, simulating an
	// admin's role change. The old token must pick up the new role on the
	// next verification.
	userStore.User = &domain.User{
		ID: authResp.UserID, Username: "bob", Email: "bob@example.com", Role: domain.RoleAdmin,
	}
	require.NoError(t, app.identityProvider.SetClaims(req.Context(), authResp.UserID,
		map[string]any{"role": "admin"}))

	req = httptest.NewRequest(http.MethodPut, "/api/auth/update-role/"+authResp.UserID, bytes.NewReader(
		mustJSON(t, map[string]string{"role": "admin"})))
	req.Header.Set("Authorization", "Bearer "+authResp.Token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
