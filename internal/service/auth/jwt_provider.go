package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ltmb786/taskboard-api/internal/config"
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/platform/logger"
)

// JWTProvider is an embedded IdentityProvider backed by HMAC-SHA256 JWTs.
// It stands in for a hosted identity service: identities are registered
// with bcrypt-hashed credentials, tokens embed the role claim current at
// issuance, and SetClaims maintains a provider-side claim registry that
// overrides token-embedded claims on Verify. That override is what makes a
// role change visible to a subject still holding an older token.
type JWTProvider struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration    // Allowed drift when validating time claims

	mu         sync.RWMutex
	identities map[string]*identityRecord // keyed by subject ID
	byEmail    map[string]string          // email -> subject ID
	claims     map[string]map[string]any  // subject ID -> claim set
}

// identityRecord holds the provider-side credential material for a subject.
type identityRecord struct {
	email        string
	passwordHash string
	displayName  string
}

// jwtCustomClaims defines the structure of JWT claims we use.
type jwtCustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Ensure JWTProvider implements both provider-side interfaces
var (
	_ IdentityProvider = (*JWTProvider)(nil)
	_ TokenIssuer      = (*JWTProvider)(nil)
)

// NewJWTProvider creates a JWT-backed identity provider from the auth
// configuration.
func NewJWTProvider(cfg config.AuthConfig) (*JWTProvider, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &JWTProvider{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
		identities:    make(map[string]*identityRecord),
		byEmail:       make(map[string]string),
		claims:        make(map[string]map[string]any),
	}, nil
}

// CreateIdentity implements IdentityProvider.CreateIdentity.
// The new subject starts with a "user" role claim.
func (p *JWTProvider) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, taken := p.byEmail[email]; taken {
		return "", ErrIdentityExists
	}

	subjectID := uuid.New().String()
	p.identities[subjectID] = &identityRecord{
		email:        email,
		passwordHash: hash,
		displayName:  displayName,
	}
	p.byEmail[email] = subjectID
	p.claims[subjectID] = map[string]any{"role": string(domain.RoleUser)}

	log.Info("identity created", "subject_id", subjectID)
	return subjectID, nil
}

// Authenticate implements TokenIssuer.Authenticate.
func (p *JWTProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	p.mu.RLock()
	subjectID, ok := p.byEmail[email]
	var hash string
	if ok {
		hash = p.identities[subjectID].passwordHash
	}
	p.mu.RUnlock()

	if !ok {
		return "", ErrInvalidCredentials
	}

	if err := NewBcryptVerifier().Compare(hash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return subjectID, nil
}

// IssueToken implements TokenIssuer.IssueToken.
// The issued token embeds the subject's current role claim.
func (p *JWTProvider) IssueToken(ctx context.Context, subjectID string) (string, error) {
	log := logger.FromContext(ctx)
	now := p.timeFunc()

	claims := jwtCustomClaims{
		Role: string(p.roleClaim(subjectID)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(p.signingKey)
	if err != nil {
		log.Error("failed to sign JWT token",
			"error", err,
			"subject_id", subjectID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// Verify implements IdentityProvider.Verify.
// Claims set through SetClaims take precedence over the role embedded in
// the token, so role changes apply without reissuing credentials.
func (p *JWTProvider) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	log := logger.FromContext(ctx)
	now := p.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(p.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return p.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		}
		log.Debug("token validation failed", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	raw := map[string]any{
		"sub":  claims.Subject,
		"role": claims.Role,
	}

	role := domain.Role(claims.Role)

	// Overlay provider-side claims set after the token was issued.
	p.mu.RLock()
	if override, ok := p.claims[claims.Subject]; ok {
		for k, v := range override {
			raw[k] = v
		}
		if r, ok := override["role"].(string); ok {
			role = domain.Role(r)
		}
	}
	p.mu.RUnlock()

	if !role.IsValid() {
		role = domain.RoleUser
	}

	return &Identity{
		SubjectID: claims.Subject,
		Role:      role,
		RawClaims: raw,
	}, nil
}

// SetClaims implements IdentityProvider.SetClaims.
// The claim set replaces any previous one for the subject. Setting claims
// for a subject the provider has no credential record for is allowed; this
// keeps role propagation re-drivable after a provider restart.
func (p *JWTProvider) SetClaims(ctx context.Context, subjectID string, claims map[string]any) error {
	if subjectID == "" {
		return ErrIdentityNotFound
	}

	copied := make(map[string]any, len(claims))
	for k, v := range claims {
		copied[k] = v
	}

	p.mu.Lock()
	p.claims[subjectID] = copied
	p.mu.Unlock()

	logger.FromContext(ctx).Info("claims updated", "subject_id", subjectID)
	return nil
}

// roleClaim returns the subject's current role claim, defaulting to "user".
func (p *JWTProvider) roleClaim(subjectID string) domain.Role {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if claims, ok := p.claims[subjectID]; ok {
		if r, ok := claims["role"].(string); ok && domain.Role(r).IsValid() {
			return domain.Role(r)
		}
	}
	return domain.RoleUser
}
