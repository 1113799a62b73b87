// Package errors provides centralized error definitions and error handling utilities
// for larek. It defines storefront sentinel errors, typed errors with context
// wrapping, and classification helpers.
//
// # Error Types
//
// Domain errors:
//   - APIError: transport failures talking to the shop API (network, non-2xx status)
//   - InvariantError: a programming invariant was violated (e.g. submitting an empty basket)
//
// Semantic errors:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input
//
// Form validation is not an error path: invalid order fields populate the store's
// error map and never produce a Go error.
//
// # Usage
//
//	err := errors.NewAPIError("GET", "/products", 502, "bad gateway")
//	if errors.IsRetryable(err) { ... }
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) { ... }
//
//	if errors.Is(err, errors.ErrEmptyBasket) { ... }
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Order invariants
var (
	// ErrEmptyBasket indicates an order was submitted with nothing in the basket.
	ErrEmptyBasket = New("basket is empty")
	// ErrUnpricedItem indicates the basket holds a product without a price.
	ErrUnpricedItem = New("basket contains an unpriced product")
	// ErrIncompleteOrder indicates a required order field is missing or invalid.
	ErrIncompleteOrder = New("order is incomplete")
)

// Catalog sentinels
var (
	// ErrProductNotFound indicates that a product id is not in the catalog.
	ErrProductNotFound = New("product not found")
)

// Transport sentinels
var (
	// ErrTransport indicates the shop API could not be reached.
	ErrTransport = New("shop API unreachable")
	// ErrTimeout indicates that a request timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that a request was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// LarekError is the base interface for all larek errors.
type LarekError interface {
	error
	Unwrap() error
	Is(target error) bool
	Severity() Severity
	// IsRetryable returns true if the operation may succeed on retry.
	IsRetryable() bool
	// IsUserFacing returns true if the message is safe to show in the UI.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity {
	return e.severity
}

func (e *baseError) IsRetryable() bool {
	return e.retryable
}

func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// APIError represents a failed call to the shop API.
// Status is zero when no response was received.
//
// Example:
//
//	err := errors.NewAPIError("POST", "/order", 400, "Invalid total")
//	fmt.Println(err) // "api error [POST /order, status=400]: Invalid total"
type APIError struct {
	baseError
	Method string
	Path   string
	Status int
}

// NewAPIError creates a new APIError. Server-side failures (5xx) and
// transport failures (status 0) are retryable; client errors are not.
func NewAPIError(method, path string, status int, message string) *APIError {
	return &APIError{
		baseError: baseError{
			message:    message,
			severity:   SeverityError,
			retryable:  status == 0 || status >= http.StatusInternalServerError,
			userFacing: true,
		},
		Method: method,
		Path:   path,
		Status: status,
	}
}

// WithCause adds a cause to the error.
func (e *APIError) WithCause(cause error) *APIError {
	e.cause = cause
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *APIError) WithRetryable(r bool) *APIError {
	e.retryable = r
	return e
}

// Message returns the server-supplied message without context.
func (e *APIError) Message() string {
	return e.message
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	var parts []string
	if e.Method != "" || e.Path != "" {
		parts = append(parts, strings.TrimSpace(e.Method+" "+e.Path))
	}
	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}

	prefix := "api error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("api error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *APIError) Is(target error) bool {
	if _, ok := target.(*APIError); ok {
		return true
	}
	if target == ErrTransport && e.Status == 0 {
		return true
	}
	if target == ErrTimeout && errors.Is(e.cause, context.DeadlineExceeded) {
		return true
	}
	if target == ErrCanceled && errors.Is(e.cause, context.Canceled) {
		return true
	}
	return e.baseError.Is(target)
}

// InvariantError represents a violated programming invariant, such as building
// an order from an empty basket. These are bugs in the caller, reported loudly
// instead of producing an empty or nonsensical request.
//
// Example:
//
//	err := errors.NewInvariantError("build order", errors.ErrEmptyBasket)
//	fmt.Println(err) // "invariant violated: build order: basket is empty"
type InvariantError struct {
	baseError
	Field string
}

// NewInvariantError creates a new InvariantError.
func NewInvariantError(message string, cause error) *InvariantError {
	return &InvariantError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityCritical,
			retryable:  false,
			userFacing: false,
		},
	}
}

// WithField records the offending order field.
func (e *InvariantError) WithField(field string) *InvariantError {
	e.Field = field
	return e
}

// Error returns the formatted error message.
func (e *InvariantError) Error() string {
	prefix := "invariant violated"
	if e.Field != "" {
		prefix = fmt.Sprintf("invariant violated [field=%s]", e.Field)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *InvariantError) Is(target error) bool {
	if _, ok := target.(*InvariantError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("product", "p1")
//	fmt.Println(err) // "product 'p1' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if target == ErrProductNotFound && e.ResourceType == "product" {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input, such as a malformed order body
// reaching the demo server.
//
// Example:
//
//	err := errors.NewValidationError("total does not match items").WithField("total")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Message returns the message without context.
func (e *ValidationError) Message() string {
	return e.message
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var larekErr LarekError
	if As(err, &larekErr) {
		return larekErr.IsRetryable()
	}

	return Is(err, ErrTimeout) || Is(err, context.DeadlineExceeded)
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var larekErr LarekError
	if As(err, &larekErr) {
		return larekErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement LarekError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var larekErr LarekError
	if As(err, &larekErr) {
		return larekErr.Severity()
	}
	return SeverityError
}

// UserMessage returns a short message suitable for the UI. Internal errors
// are replaced by a generic message so implementation details stay in the log.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if As(err, &apiErr) {
		if apiErr.Status == 0 {
			return "Shop is unreachable, try again later"
		}
		return apiErr.Message()
	}

	var validation *ValidationError
	if As(err, &validation) {
		return validation.Message()
	}

	if IsUserFacing(err) {
		return err.Error()
	}
	return "Something went wrong"
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
