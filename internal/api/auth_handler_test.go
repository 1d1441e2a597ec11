package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/mocks"
	"github.com/ltmb786/taskboard-api/internal/service"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
)

var assertAnError = errors.New("claims backend down")

func authTestRouter(users *mocks.MockUserStore, provider *mocks.MockIdentityProvider) chi.Router {
	userService := service.NewUserService(users, &mocks.MockTaskStore{}, provider, provider, nil)
	handler := NewAuthHandler(userService, nil)

	r := chi.NewRouter()
	r.Post("/api/auth/register", handler.Register)
	r.Post("/api/auth/login", handler.Login)
	r.Put("/api/auth/update-role/{id}", handler.UpdateRole)
	return r
}

func TestRegister(t *testing.T) {
	provider := &mocks.MockIdentityProvider{SubjectID: "subj-1", Token: "signed-token"}
	users := &mocks.MockUserStore{}
	router := authTestRouter(users, provider)

	body, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "s3cretpass",
		"username": "alice",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "subj-1", resp.UserID)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "user", resp.Role)
	require.Len(t, users.CreateCalls, 1)
}

func TestRegister_InvalidEmail(t *testing.T) {
	router := authTestRouter(&mocks.MockUserStore{}, &mocks.MockIdentityProvider{})

	body, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "s3cretpass",
		"username": "alice",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	provider := &mocks.MockIdentityProvider{Err: auth.ErrIdentityExists}
	router := authTestRouter(&mocks.MockUserStore{}, provider)

	body, _ := json.Marshal(map[string]string{
		"email":    "taken@example.com",
		"password": "s3cretpass",
		"username": "dupe",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Email already exists")
}

func TestLogin(t *testing.T) {
	provider := &mocks.MockIdentityProvider{SubjectID: "subj-1", Token: "fresh-token"}
	users := &mocks.MockUserStore{User: &domain.User{
		ID:       "subj-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleAdmin,
	}}
	router := authTestRouter(users, provider)

	body, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "s3cretpass",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "fresh-token", resp.Token)
	assert.Equal(t, "admin", resp.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	provider := &mocks.MockIdentityProvider{Err: auth.ErrInvalidCredentials}
	router := authTestRouter(&mocks.MockUserStore{}, provider)

	body, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid credentials")
}

func TestUpdateRole_AdminOnly(t *testing.T) {
	users := &mocks.MockUserStore{}
	provider := &mocks.MockIdentityProvider{}
	router := authTestRouter(users, provider)

	body, _ := json.Marshal(map[string]string{"role": "admin"})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/auth/update-role/alice", bytes.NewReader(body)),
		"bob", domain.RoleUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, users.UpdateRoleCalls)
}

func TestUpdateRole_Admin(t *testing.T) {
	users := &mocks.MockUserStore{User: &domain.User{
		ID:       "alice",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleAdmin,
	}}
	provider := &mocks.MockIdentityProvider{}
	router := authTestRouter(users, provider)

	body, _ := json.Marshal(map[string]string{"role": "admin"})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/auth/update-role/alice", bytes.NewReader(body)),
		"root", domain.RoleAdmin)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, users.UpdateRoleCalls, 1)
	assert.Equal(t, domain.RoleAdmin, users.UpdateRoleCalls[0].Role)
	require.Len(t, provider.SetClaimsCalls, 1)
	assert.Equal(t, "admin", provider.SetClaimsCalls[0].Claims["role"])
}

func TestUpdateRole_InvalidRole(t *testing.T) {
	router := authTestRouter(&mocks.MockUserStore{}, &mocks.MockIdentityProvider{})

	body, _ := json.Marshal(map[string]string{"role": "supreme-leader"})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/auth/update-role/alice", bytes.NewReader(body)),
		"root", domain.RoleAdmin)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateRole_ClaimFailureIs500(t *testing.T) {
	users := &mocks.MockUserStore{}
	provider := &mocks.MockIdentityProvider{
		SetClaimsFn: func(_ context.Context, _ string, _ map[string]any) error {
			return assertAnError
		},
	}
	router := authTestRouter(users, provider)

	body, _ := json.Marshal(map[string]string{"role": "admin"})
	req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/auth/update-role/alice", bytes.NewReader(body)),
		"root", domain.RoleAdmin)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), assertAnError.Error(), "raw error must not leak")
}
