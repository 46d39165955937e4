package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeSocial represents lookup and uniqueness errors on the social graph
	ErrorTypeSocial ErrorType = "social"
	// ErrorTypeValidation represents rejected arguments
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeGraph represents Neo4j export errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// Identifier kinds carried by lookup errors
const (
	KindPerson = "person"
	KindGroup  = "group"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// Base exposes the embedded BaseError of typed errors
func (e *BaseError) Base() *BaseError {
	return e
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Social Errors

// ErrDuplicateIdentifier is returned when registering a code that already exists
type ErrDuplicateIdentifier struct {
	*BaseError
	Kind string
	ID   string
}

func NewDuplicateIdentifier(kind, id string) *ErrDuplicateIdentifier {
	return &ErrDuplicateIdentifier{
		BaseError: NewBaseError(ErrorTypeSocial, fmt.Sprintf("%s already exists: %s", kind, id), nil),
		Kind:      kind,
		ID:        id,
	}
}

// ErrUnknownIdentifier is returned when a person code or group name is not registered
type ErrUnknownIdentifier struct {
	*BaseError
	Kind string
	ID   string
}

func NewUnknownIdentifier(kind, id string) *ErrUnknownIdentifier {
	return &ErrUnknownIdentifier{
		BaseError: NewBaseError(ErrorTypeSocial, fmt.Sprintf("%s not found: %s", kind, id), nil),
		Kind:      kind,
		ID:        id,
	}
}

// ErrPostNotFound is returned when a post id does not belong to the given author
type ErrPostNotFound struct {
	*BaseError
	Author string
	PostID string
}

func NewPostNotFound(author, postID string) *ErrPostNotFound {
	return &ErrPostNotFound{
		BaseError: NewBaseError(ErrorTypeSocial, fmt.Sprintf("post %s not found for %s", postID, author), nil),
		Author:    author,
		PostID:    postID,
	}
}

// Validation Errors

// ErrInvalidPagination is returned for a page below 1 or a non-positive page size
type ErrInvalidPagination struct {
	*BaseError
	Page int
	Size int
}

func NewInvalidPagination(page, size int) *ErrInvalidPagination {
	return &ErrInvalidPagination{
		BaseError: NewBaseError(ErrorTypeValidation, fmt.Sprintf("invalid pagination: page=%d size=%d", page, size), nil),
		Page:      page,
		Size:      size,
	}
}

// ErrInvalidFriendship is returned when a person is asked to befriend themselves
type ErrInvalidFriendship struct {
	*BaseError
	Code string
}

func NewInvalidFriendship(code string) *ErrInvalidFriendship {
	return &ErrInvalidFriendship{
		BaseError: NewBaseError(ErrorTypeValidation, fmt.Sprintf("person cannot befriend themselves: %s", code), nil),
		Code:      code,
	}
}

// ErrInvalidSnapshot is returned when a snapshot cannot be restored or exported
type ErrInvalidSnapshot struct {
	*BaseError
	Reason string
}

func NewInvalidSnapshot(reason string) *ErrInvalidSnapshot {
	return &ErrInvalidSnapshot{
		BaseError: NewBaseError(ErrorTypeValidation, fmt.Sprintf("invalid snapshot: %s", reason), nil),
		Reason:    reason,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	var typed interface{ Base() *BaseError }
	if stderrors.As(err, &typed) {
		return typed.Base().Type == errType
	}
	return false
}

// IsUnknownIdentifier reports whether err is an ErrUnknownIdentifier
func IsUnknownIdentifier(err error) bool {
	var target *ErrUnknownIdentifier
	return stderrors.As(err, &target)
}

// IsDuplicateIdentifier reports whether err is an ErrDuplicateIdentifier
func IsDuplicateIdentifier(err error) bool {
	var target *ErrDuplicateIdentifier
	return stderrors.As(err, &target)
}

// IsPostNotFound reports whether err is an ErrPostNotFound
func IsPostNotFound(err error) bool {
	var target *ErrPostNotFound
	return stderrors.As(err, &target)
}

// IsInvalidPagination reports whether err is an ErrInvalidPagination
func IsInvalidPagination(err error) bool {
	var target *ErrInvalidPagination
	return stderrors.As(err, &target)
}

// IsInvalidSnapshot reports whether err is an ErrInvalidSnapshot
func IsInvalidSnapshot(err error) bool {
	var target *ErrInvalidSnapshot
	return stderrors.As(err, &target)
}

// IsRetryable checks if an error is retryable.
// Nothing on the in-memory graph is transient; only Neo4j export failures are.
func IsRetryable(err error) bool {
	return IsErrorType(err, ErrorTypeGraph)
}
