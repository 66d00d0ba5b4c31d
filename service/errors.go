package service

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps to response codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError marks invalid caller input. The HTTP layer maps it to
// 400; unrecognized errors are treated as internal failures.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
