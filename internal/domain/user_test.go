package domain

import "testing"

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("subject-1", "khanh", "khanh@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID != "subject-1" {
		t.Errorf("Expected ID subject-1, got %s", user.ID)
	}

	if user.Role != RoleUser {
		t.Errorf("Expected role %q, got %q", RoleUser, user.Role)
	}

	if !user.NotificationsEnabled {
		t.Error("Expected notifications enabled by default")
	}

	if user.CreatedAt.IsZero() || user.LastActive.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	// Validation failures
	if _, err := NewUser("", "khanh", "khanh@example.com"); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	if _, err := NewUser("subject-1", "", "khanh@example.com"); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	if _, err := NewUser("subject-1", "khanh", ""); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	if _, err := NewUser("subject-1", "khanh", "not-an-email"); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}
}

func TestUserTouch(t *testing.T) {
	t.Parallel()

	user, err := NewUser("subject-1", "khanh", "khanh@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	before := user.LastActive
	user.Touch()

	if user.LastActive.Before(before) {
		t.Error("Expected LastActive to move forward")
	}
}

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	if !RoleUser.IsValid() || !RoleAdmin.IsValid() {
		t.Error("Expected known roles to be valid")
	}

	if Role("owner").IsValid() {
		t.Error("Expected unknown role to be invalid")
	}

	user, err := NewUser("subject-1", "khanh", "khanh@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	user.Role = Role("superuser")
	if err := user.Validate(); err != ErrInvalidRole {
		t.Errorf("Expected error %v, got %v", ErrInvalidRole, err)
	}
}
