// Package authz implements the authorization guard: a pure decision
// function over a verified identity and a requested action. It touches no
// storage; ownership facts are carried in the action by the caller, which
// re-fetches them from the store before asking.
package authz

import (
	"github.com/ltmb786/taskboard-api/internal/domain"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
)

// actionKind enumerates the guarded operations.
type actionKind int

const (
	kindReadUsers actionKind = iota
	kindCreateTask
	kindUpdateTask
	kindDeleteTask
	kindChangeRole
	kindPostNotification
	kindListNotifications
)

// Action is a requested operation, optionally scoped to a resource owner.
type Action struct {
	kind          actionKind
	resourceOwner string
}

// ReadUsers is the action of reading user profiles.
func ReadUsers() Action { return Action{kind: kindReadUsers} }

// CreateTask is the action of creating a new task.
func CreateTask() Action { return Action{kind: kindCreateTask} }

// UpdateTask is the action of updating the task currently owned by ownerID.
// The owner must come from the stored task, not the request body.
func UpdateTask(ownerID string) Action {
	return Action{kind: kindUpdateTask, resourceOwner: ownerID}
}

// DeleteTask is the action of deleting the task currently owned by ownerID.
func DeleteTask(ownerID string) Action {
	return Action{kind: kindDeleteTask, resourceOwner: ownerID}
}

// ChangeRole is the action of changing any user's role.
func ChangeRole() Action { return Action{kind: kindChangeRole} }

// PostNotification is the action of recording a notification.
func PostNotification() Action { return Action{kind: kindPostNotification} }

// ListNotifications is the action of reading a notification feed.
func ListNotifications() Action { return Action{kind: kindListNotifications} }

// Authorize decides whether the identity may perform the action.
// Returns nil to allow, domain.ErrUnauthenticated when no identity is
// present, and domain.ErrForbidden to deny. A denial carries no hint of
// whether the target resource exists.
//
// Policy: profile reads, task creation, and notification operations are
// open to any authenticated identity; task mutation is owner-only with no
// admin override; role changes are admin-only.
func Authorize(identity *auth.Identity, action Action) error {
	if identity == nil || identity.SubjectID == "" {
		return domain.ErrUnauthenticated
	}

	switch action.kind {
	case kindReadUsers, kindCreateTask, kindPostNotification, kindListNotifications:
		return nil

	case kindUpdateTask, kindDeleteTask:
		if identity.SubjectID != action.resourceOwner {
			return domain.ErrForbidden
		}
		return nil

	case kindChangeRole:
		if identity.Role != domain.RoleAdmin {
			return domain.ErrForbidden
		}
		return nil

	default:
		return domain.ErrForbidden
	}
}

// ForceOwner returns the owner a new task must be created with: always the
// verified caller. Any client-supplied owner value is discarded before
// persistence, so owner spoofing is impossible regardless of transport.
func ForceOwner(identity *auth.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.SubjectID
}
