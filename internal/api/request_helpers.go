package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ltmb786/taskboard-api/internal/api/shared"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
)

// getIdentityFromContext extracts the verified caller identity from the
// request context. The identity is placed there by the authentication
// middleware; a missing identity means the route was wired without it.
func getIdentityFromContext(r *http.Request) (*auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(*auth.Identity)
	if !ok || identity == nil || identity.SubjectID == "" {
		return nil, false
	}
	return identity, true
}

// getPathUUID extracts a UUID from the URL path parameters.
// It parses and validates the UUID, handling common error cases.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// pathUserID extracts the userId path parameter. User IDs are identity
// provider subjects, not UUIDs, so there is nothing to parse.
func pathUserID(r *http.Request) string {
	return chi.URLParam(r, "userId")
}

// requireIdentity extracts the caller identity, writing a 401 response and
// returning false when it is absent.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return nil, false
	}
	return identity, true
}
