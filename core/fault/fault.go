// Package fault defines the failure taxonomy shared by the stores and the
// HTTP layer. Errors are classified by wrapping one of the sentinels below so
// handlers can pick a redirect target without inspecting error strings.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrAuth marks bad credentials or a missing session.
	ErrAuth = errors.New("authentication failed")
	// ErrForbidden marks an operation the current role may not perform.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
)

// Validationf wraps ErrValidation with a user-facing message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Conflictf wraps ErrConflict with a user-facing message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConflict}, args...)...)
}

// Authf wraps ErrAuth with a user-facing message.
func Authf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrAuth}, args...)...)
}

// Forbiddenf wraps ErrForbidden with a user-facing message.
func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrForbidden}, args...)...)
}

// NotFoundf wraps ErrNotFound with a user-facing message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Message strips the sentinel prefix from a classified error, leaving the
// user-facing text. Unclassified errors are returned as-is.
func Message(err error) string {
	for _, sentinel := range []error{ErrValidation, ErrConflict, ErrAuth, ErrForbidden, ErrNotFound} {
		if errors.Is(err, sentinel) {
			msg := err.Error()
			prefix := sentinel.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return msg
		}
	}
	return err.Error()
}
