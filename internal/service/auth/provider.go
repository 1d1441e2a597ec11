// Package auth implements the identity boundary: verification of bearer
// credentials against the identity provider, token issuance, and the
// provider-side claim set that carries each user's role.
package auth

import (
	"context"

	"github.com/ltmb786/taskboard-api/internal/domain"
)

// Identity is a verified caller identity extracted from a bearer credential.
type Identity struct {
	// SubjectID is the identity provider's unique subject identifier.
	// It matches the ID of the mirrored user record.
	SubjectID string

	// Role is the caller's role claim at verification time.
	Role domain.Role

	// RawClaims carries the full claim set as presented by the provider.
	RawClaims map[string]any
}

// IdentityProvider is the contract the application requires from the
// identity provider. Each call is independent; verification establishes
// no session and nothing is cached between requests.
type IdentityProvider interface {
	// Verify validates a bearer credential and returns the caller identity.
	// Returns ErrInvalidToken (or ErrExpiredToken) when the credential is
	// rejected or cannot be parsed.
	Verify(ctx context.Context, token string) (*Identity, error)

	// SetClaims replaces the claim set attached to the given subject.
	// Claims set here are visible on the next Verify call, without the
	// subject needing a fresh credential.
	SetClaims(ctx context.Context, subjectID string, claims map[string]any) error

	// CreateIdentity registers a new identity with the provider and
	// returns its subject ID.
	// Returns ErrIdentityExists if the email is already registered.
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)
}

// TokenIssuer issues bearer credentials for known subjects. It is separate
// from IdentityProvider because issuance is an implementation detail of the
// embedded provider; a hosted provider would issue tokens on its own side.
type TokenIssuer interface {
	// IssueToken creates a signed bearer credential for the subject.
	IssueToken(ctx context.Context, subjectID string) (string, error)

	// Authenticate checks an email/password pair and returns the subject ID.
	// Returns ErrInvalidCredentials when the pair does not match.
	Authenticate(ctx context.Context, email, password string) (string, error)
}
