package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConfig                = errors.New("configuration error")
	ErrUpstream              = errors.New("upstream provider error")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// OperationError is the client-facing failure of a query operation. Message is
// safe to return to callers; the cause stays internal and is only used for classification.
type OperationError struct {
	Message string
	cause   error
}

func NewOperationError(message string, cause error) *OperationError {
	return &OperationError{Message: message, cause: cause}
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.cause
}
