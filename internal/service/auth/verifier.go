package auth

import (
	"context"
)

// Verifier resolves an opaque bearer credential into a verified Identity.
// It is stateless: every call goes to the identity provider, so a revoked
// or re-claimed identity is picked up on the very next request.
type Verifier struct {
	provider IdentityProvider
}

// NewVerifier creates a Verifier backed by the given identity provider.
func NewVerifier(provider IdentityProvider) *Verifier {
	if provider == nil {
		panic("provider cannot be nil")
	}
	return &Verifier{provider: provider}
}

// Verify validates the bearer credential.
// Returns ErrMissingToken when the credential is empty and the provider's
// rejection error (ErrInvalidToken, ErrExpiredToken) otherwise.
func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	return v.provider.Verify(ctx, token)
}
