// Package common defines shared sentinel errors used across the filecab
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Error kinds. Every error that crosses a service boundary unwraps to
	// one of these, which is what the transport layer switches on.
	ErrorNotFound     = errors.New("Not found")
	ErrorUnauthorized = errors.New("Unauthorized")
	ErrorBadRequest   = errors.New("bad request")
	ErrorConflict     = errors.New("conflict")
	ErrorInternal     = errors.New("internal error")
)

// RequestError is a validation failure with the exact user-visible message.
// It unwraps to one of the kind sentinels above so errors.Is works on both
// the specific error and its kind.
type RequestError struct {
	Kind error
	Msg  string
}

func (e *RequestError) Error() string { return e.Msg }
func (e *RequestError) Unwrap() error { return e.Kind }

func badRequest(msg string) error {
	return &RequestError{Kind: ErrorBadRequest, Msg: msg}
}

var (
	// Registration errors.
	ErrMissingEmail    = badRequest("Missing email")
	ErrMissingPassword = badRequest("Missing password")
	ErrAlreadyExist    error = &RequestError{Kind: ErrorConflict, Msg: "Already exist"}

	// Upload validation errors. ErrParentNotFound is a not-found kind even
	// though the upload endpoint reports it with the other 400s.
	ErrMissingName     = badRequest("Missing name")
	ErrMissingType     = badRequest("Missing type")
	ErrMissingData     = badRequest("Missing data")
	ErrParentNotFound  error = &RequestError{Kind: ErrorNotFound, Msg: "Parent not found"}
	ErrParentNotFolder = badRequest("Parent is not a folder")

	// Content read errors.
	ErrFolderHasNoData = badRequest("A folder doesn't have content")
)
