package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/mocks"
	"github.com/ltmb786/taskboard-api/internal/service"
	"github.com/ltmb786/taskboard-api/internal/store"
)

func notificationTestRouter(
	notifStore *mocks.MockNotificationStore,
	userStore *mocks.MockUserStore,
	gateway *mocks.MockPushGateway,
) chi.Router {
	svc := service.NewNotificationService(notifStore, userStore, gateway, nil)
	handler := NewNotificationHandler(svc, nil)

	r := chi.NewRouter()
	r.Post("/api/notifications", handler.Create)
	r.Get("/api/notifications/{userId}", handler.ListByUser)
	return r
}

func notificationBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"taskId": uuid.New().String(),
		"userId": "bob",
		"action": "assigned",
		"title":  "New task",
		"body":   "Alice assigned you a task",
	})
	require.NoError(t, err)
	return body
}

func TestNotificationCreate(t *testing.T) {
	notifStore := &mocks.MockNotificationStore{}
	userStore := &mocks.MockUserStore{User: &domain.User{
		ID:                   "bob",
		Username:             "bob",
		Email:                "bob@example.com",
		PushToken:            "device-1",
		NotificationsEnabled: true,
		Role:                 domain.RoleUser,
	}}
	gateway := &mocks.MockPushGateway{}
	router := notificationTestRouter(notifStore, userStore, gateway)

	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(notificationBody(t))),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Len(t, notifStore.CreateCalls, 1)
	assert.Len(t, gateway.SendCalls, 1)
}

func TestNotificationCreate_GatewayFailureStill201(t *testing.T) {
	notifStore := &mocks.MockNotificationStore{}
	userStore := &mocks.MockUserStore{User: &domain.User{
		ID:                   "bob",
		Username:             "bob",
		Email:                "bob@example.com",
		PushToken:            "device-1",
		NotificationsEnabled: true,
		Role:                 domain.RoleUser,
	}}
	gateway := &mocks.MockPushGateway{Err: errors.New("gateway down")}
	router := notificationTestRouter(notifStore, userStore, gateway)

	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(notificationBody(t))),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Len(t, notifStore.CreateCalls, 1)
}

func TestNotificationCreate_UnknownRecipient(t *testing.T) {
	notifStore := &mocks.MockNotificationStore{}
	userStore := &mocks.MockUserStore{Err: store.ErrUserNotFound}
	router := notificationTestRouter(notifStore, userStore, &mocks.MockPushGateway{})

	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(notificationBody(t))),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, notifStore.CreateCalls)
}

func TestNotificationCreate_MissingField(t *testing.T) {
	router := notificationTestRouter(&mocks.MockNotificationStore{}, &mocks.MockUserStore{}, &mocks.MockPushGateway{})

	body, _ := json.Marshal(map[string]string{
		"taskId": uuid.New().String(),
		"userId": "bob",
		// no action/title/body
	})
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(body)),
		"alice", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNotificationListByUser(t *testing.T) {
	feed := []*domain.Notification{
		{ID: uuid.New(), TaskID: uuid.New().String(), RecipientID: "bob", Action: "updated", Title: "t", Body: "b"},
	}
	notifStore := &mocks.MockNotificationStore{Notifications: feed}
	router := notificationTestRouter(notifStore, &mocks.MockUserStore{}, &mocks.MockPushGateway{})

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/notifications/bob", nil), "bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []*domain.Notification
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].RecipientID)
	assert.Equal(t, []string{"bob"}, notifStore.FindByRecipientCalls)
}

func TestNotificationListByUser_EmptyIsArray(t *testing.T) {
	router := notificationTestRouter(&mocks.MockNotificationStore{}, &mocks.MockUserStore{}, &mocks.MockPushGateway{})

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/notifications/bob", nil), "bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
