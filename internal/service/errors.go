package service

import "fmt"

// ServiceError is a custom error type for service-layer failures with
// additional context. It wraps the underlying error so callers can still
// classify it with errors.Is.
type ServiceError struct {
	Service   string // The service (e.g., "task", "notification")
	Operation string // The operation that failed (e.g., "create", "set_role")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
