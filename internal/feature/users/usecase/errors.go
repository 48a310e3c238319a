// Package usecase implements the business logic for the users feature.
package usecase

import (
	"errors"
	"net/http"
)

// Gateway errors. Repositories return these so the usecase can tell an
// absent record or a duplicate email apart from a storage fault.
var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a write would break the unique email index.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Kind classifies an outcome failure.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindConflict
	KindNotFound
	KindOperationFailed
	KindInternal
)

// String returns the kind name used in log records.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindOperationFailed:
		return "operation_failed"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a failure that has already been mapped to an HTTP status and a
// public message. Message is sent to the client verbatim.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Public failures. The same message can map to different statuses depending
// on the operation, so some messages appear twice.
var (
	ErrInvalidID            = newError(KindInvalidInput, http.StatusUnauthorized, "User ID Required & Required as a number")
	ErrAllFieldsRequired    = newError(KindInvalidInput, http.StatusUnauthorized, "All fields are required")
	ErrInvalidAge           = newError(KindInvalidInput, http.StatusUnauthorized, "Age is required and must be a positive number greater than 0")
	ErrInvalidDob           = newError(KindInvalidInput, http.StatusUnauthorized, "Invalid date of birth")
	ErrInvalidEmail         = newError(KindInvalidInput, http.StatusUnauthorized, "Invalid email format")
	ErrMalformedEmail       = newError(KindInvalidInput, http.StatusBadRequest, "Invalid email format")
	ErrNameRequired         = newError(KindInvalidInput, http.StatusUnauthorized, "Name is required")
	ErrEmailRequired        = newError(KindInvalidInput, http.StatusUnauthorized, "Email is required")
	ErrPasswordsRequired    = newError(KindInvalidInput, http.StatusUnauthorized, "New & Old Passwords Required")
	ErrOldPasswordIncorrect = newError(KindInvalidInput, http.StatusBadRequest, "Old password, entered is incorrect")

	ErrEmailTaken = newError(KindConflict, http.StatusBadRequest, "Email already exists")

	ErrNoUsers    = newError(KindNotFound, http.StatusNotFound, "No users found")
	ErrNoSuchUser = newError(KindNotFound, http.StatusNotFound, "User not found")

	ErrHashPassword         = newError(KindOperationFailed, http.StatusBadRequest, "Error hashing password")
	ErrHashNewPassword      = newError(KindOperationFailed, http.StatusBadRequest, "Error hashing new password")
	ErrCreateFailed         = newError(KindOperationFailed, http.StatusBadRequest, "Error creating user")
	ErrUpdateFailed         = newError(KindOperationFailed, http.StatusBadRequest, "User Update Failed")
	ErrDeleteFailed         = newError(KindOperationFailed, http.StatusBadRequest, "User deletion failed")
	ErrNameUpdateFailed     = newError(KindOperationFailed, http.StatusBadRequest, "User Name Update Failed")
	ErrEmailUpdateFailed    = newError(KindOperationFailed, http.StatusBadRequest, "User Email Update Failed")
	ErrPasswordUpdateFailed = newError(KindOperationFailed, http.StatusBadRequest, "User Password Update Failed")

	ErrInternal = newError(KindInternal, http.StatusInternalServerError, "Internal server error")
)
