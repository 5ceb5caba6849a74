// Package apperror holds the request-scoped error kinds surfaced by the API.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "unknown"
	}
}

// Error is a terminal, non-retryable client error. Validation errors carry
// every violation message in Messages; the other kinds carry a Reason.
type Error struct {
	Kind     Kind
	Reason   string
	Messages []string
}

func (e *Error) Error() string {
	if e.Kind == KindValidation {
		return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, "; "))
	}
	return e.Reason
}

func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func NotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func Unprocessable(format string, args ...any) *Error {
	return &Error{Kind: KindUnprocessable, Reason: fmt.Sprintf(format, args...)}
}

// As unwraps err into an *Error when it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

const (
	ReasonStudentNotFound    = "student not registered"
	ReasonExamNotFound       = "exam not registered"
	ReasonQuestionNotFound   = "question not registered"
	ReasonExamAnswerNotFound = "exam answer not registered"
)
