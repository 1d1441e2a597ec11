package domain

import (
	"fmt"
	"time"
)

// Role describes a user's role claim. It is stored on the user record and
// mirrored into the identity provider's claim set.
type Role string

// Known roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Common validation errors for User. Each wraps ErrValidation so callers
// can classify them with errors.Is.
var (
	ErrEmptyUserID   = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrEmptyEmail    = fmt.Errorf("%w: email cannot be empty", ErrValidation)
)

// User represents a registered user of the taskboard application.
// The ID matches the subject ID issued by the identity provider, so a
// verified bearer credential maps directly onto a user record.
//
// Users are never hard-deleted; role changes and activity updates mutate
// the record in place.
type User struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	Avatar               string    `json:"avatar"`
	PushToken            string    `json:"-"` // Device push registration, never exposed
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	Role                 Role      `json:"role"`
	CreatedAt            time.Time `json:"createdAt"`
	LastActive           time.Time `json:"lastActive"`
}

// NewUser creates a new User mirroring an identity-provider subject.
// New users always start with the "user" role and notifications enabled;
// elevation happens through role administration, never at registration.
// Returns an error if validation fails.
func NewUser(subjectID, username, email string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:                   subjectID,
		Username:             username,
		Email:                email,
		NotificationsEnabled: true,
		Role:                 RoleUser,
		CreatedAt:            now,
		LastActive:           now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if !u.Role.IsValid() {
		return ErrInvalidRole
	}

	return nil
}

// Touch updates the user's last-active timestamp.
func (u *User) Touch() {
	u.LastActive = time.Now().UTC()
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// The store additionally enforces uniqueness, which is the constraint
// that actually matters for this system.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
