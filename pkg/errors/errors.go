package errors

import (
	"errors"
	"strings"
)

// ValidationError reports a single field that failed a domain rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError for field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Required is the error for a value that was absent from the input.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// ValidationErrors collects every failing field of one entity.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the messages in the order the checks ran.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Append adds err when it is a validation error and returns the new slice.
// Any other non-nil error is dropped; callers only pass setter results.
func (e ValidationErrors) Append(err error) ValidationErrors {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return append(e, ve)
	}
	return e
}

// OrNil returns nil when nothing failed, so callers can `return errs.OrNil()`.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidationMessages extracts the user-facing messages when err carries
// validation failures. ok is false for every other error.
func ValidationMessages(err error) (msgs []string, ok bool) {
	var many ValidationErrors
	if errors.As(err, &many) {
		return many.Messages(), true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return []string{one.Message}, true
	}
	return nil, false
}
