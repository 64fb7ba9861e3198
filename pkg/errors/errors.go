package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsNotFound reports whether err is an *ErrNotFound.
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// ShopifyError is the structured error raised by the Storefront API client
// for any transport failure, JSON decode failure, or a GraphQL-level errors
// array. Query carries the document that was in flight when the call failed.
type ShopifyError struct {
	Cause   string
	Status  int
	Message string
	Query   string
}

func (e *ShopifyError) Error() string {
	return fmt.Sprintf("shopify: %s (status %d, cause: %s)", e.Message, e.Status, e.Cause)
}

// NewShopifyError normalizes an arbitrary failure into a *ShopifyError.
// A zero status defaults to 500; a nil cause is recorded as "unknown".
func NewShopifyError(cause error, status int, message, query string) *ShopifyError {
	causeStr := "unknown"
	if cause != nil {
		causeStr = cause.Error()
	}
	if status == 0 {
		status = 500
	}
	return &ShopifyError{
		Cause:   causeStr,
		Status:  status,
		Message: message,
		Query:   query,
	}
}
