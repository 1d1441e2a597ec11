package mocks

import (
	"context"
	"sync"

	"github.com/ltmb786/taskboard-api/internal/service/auth"
)

// MockIdentityProvider implements auth.IdentityProvider and auth.TokenIssuer
// for testing
type MockIdentityProvider struct {
	// Custom behavior functions
	VerifyFn         func(ctx context.Context, token string) (*auth.Identity, error)
	SetClaimsFn      func(ctx context.Context, subjectID string, claims map[string]any) error
	CreateIdentityFn func(ctx context.Context, email, password, displayName string) (string, error)
	IssueTokenFn     func(ctx context.Context, subjectID string) (string, error)
	AuthenticateFn   func(ctx context.Context, email, password string) (string, error)

	// Default response values
	Identity  *auth.Identity
	SubjectID string
	Token     string
	Err       error

	// Call tracking for verification
	mu                  sync.Mutex
	VerifyCalls         []string
	SetClaimsCalls      []SetClaimsCall
	CreateIdentityCalls []CreateIdentityCall
	IssueTokenCalls     []string
	AuthenticateCalls   []AuthenticateCall
}

// SetClaimsCall records the arguments of one claim update.
type SetClaimsCall struct {
	SubjectID string
	Claims    map[string]any
}

// CreateIdentityCall records the arguments of one identity creation.
type CreateIdentityCall struct {
	Email       string
	Password    string
	DisplayName string
}

// AuthenticateCall records the arguments of one credential check.
type AuthenticateCall struct {
	Email    string
	Password string
}

// Ensure MockIdentityProvider implements both auth interfaces
var (
	_ auth.IdentityProvider = (*MockIdentityProvider)(nil)
	_ auth.TokenIssuer      = (*MockIdentityProvider)(nil)
)

func (m *MockIdentityProvider) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	m.mu.Lock()
	m.VerifyCalls = append(m.VerifyCalls, token)
	m.mu.Unlock()

	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Identity, m.Err
}

func (m *MockIdentityProvider) SetClaims(ctx context.Context, subjectID string, claims map[string]any) error {
	m.mu.Lock()
	m.SetClaimsCalls = append(m.SetClaimsCalls, SetClaimsCall{SubjectID: subjectID, Claims: claims})
	m.mu.Unlock()

	if m.SetClaimsFn != nil {
		return m.SetClaimsFn(ctx, subjectID, claims)
	}
	return m.Err
}

func (m *MockIdentityProvider) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	m.mu.Lock()
	m.CreateIdentityCalls = append(m.CreateIdentityCalls, CreateIdentityCall{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	m.mu.Unlock()

	if m.CreateIdentityFn != nil {
		return m.CreateIdentityFn(ctx, email, password, displayName)
	}
	return m.SubjectID, m.Err
}

func (m *MockIdentityProvider) IssueToken(ctx context.Context, subjectID string) (string, error) {
	m.mu.Lock()
	m.IssueTokenCalls = append(m.IssueTokenCalls, subjectID)
	m.mu.Unlock()

	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, subjectID)
	}
	return m.Token, m.Err
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	m.mu.Lock()
	m.AuthenticateCalls = append(m.AuthenticateCalls, AuthenticateCall{Email: email, Password: password})
	m.mu.Unlock()

	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return m.SubjectID, m.Err
}
