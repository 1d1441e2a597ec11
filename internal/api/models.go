package api

import (
	"time"

	"github.com/ltmb786/taskboard-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Username string `json:"username" validate:"required,min=2,max=64"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the identity provider's subject identifier
	UserID string `json:"user_id"`

	// Token is the signed bearer credential for subsequent requests
	Token string `json:"token"`

	// Role is the role the user holds at issuance time
	Role string `json:"role"`
}

// UpdateRoleRequest defines the payload for the role administration endpoint.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// CreateTaskRequest defines the payload for task creation. CreatedBy is
// accepted for wire compatibility but the stored owner is always the
// authenticated caller.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=500"`
	Description string     `json:"description" validate:"required"`
	Status      string     `json:"status"`
	Priority    any        `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
	Category    string     `json:"category"`
	Attachments []string   `json:"attachments"`
	CreatedBy   string     `json:"createdBy"`
}

// UpdateTaskRequest defines the payload for a full task update.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=500"`
	Description string     `json:"description" validate:"required"`
	Status      string     `json:"status"`
	Priority    any        `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
	Category    string     `json:"category"`
	Attachments []string   `json:"attachments"`
	Completed   bool       `json:"completed"`
}

// CreateNotificationRequest defines the payload for posting a notification.
type CreateNotificationRequest struct {
	TaskID string `json:"taskId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
	Action string `json:"action" validate:"required"`
	Title  string `json:"title"  validate:"required"`
	Body   string `json:"body"   validate:"required"`
}

// UserProfileResponse is one entry of the user directory: the user record
// plus the tasks they created.
type UserProfileResponse struct {
	ID                   string         `json:"id"`
	Username             string         `json:"username"`
	Email                string         `json:"email"`
	Avatar               string         `json:"avatar,omitempty"`
	NotificationsEnabled bool           `json:"notificationsEnabled"`
	Role                 string         `json:"role"`
	CreatedAt            time.Time      `json:"createdAt"`
	LastActive           time.Time      `json:"lastActive"`
	Tasks                []*domain.Task `json:"tasks"`
	TaskCount            int            `json:"taskCount"`
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
