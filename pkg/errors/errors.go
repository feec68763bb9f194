package errors

import "fmt"

// ErrNotFound indicates a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates missing or invalid credentials
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrBackend indicates the backend API rejected or failed a request
type ErrBackend struct {
	StatusCode int
	Message    string
}

func (e *ErrBackend) Error() string {
	return fmt.Sprintf("backend API error: status %d: %s", e.StatusCode, e.Message)
}

// ErrInvalidStateTransition indicates an illegal order status change
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ErrEmptyCart indicates a checkout was attempted with no items
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}
