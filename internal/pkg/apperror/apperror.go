package apperror

import "net/http"

// Kind classifies a service failure so the HTTP boundary can translate it
// into a status code without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindConflict
	KindValidation
)

// Error carries a machine-readable kind plus the human message surfaced
// to the caller unmodified.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status maps the kind to its transport status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(message string) *Error     { return &Error{Kind: KindNotFound, Message: message} }
func Unauthorized(message string) *Error { return &Error{Kind: KindUnauthorized, Message: message} }
func Conflict(message string) *Error     { return &Error{Kind: KindConflict, Message: message} }
func Validation(message string) *Error   { return &Error{Kind: KindValidation, Message: message} }
func Internal(message string) *Error     { return &Error{Kind: KindInternal, Message: message} }

// From returns err as an *Error, wrapping unexpected failures as internal.
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return Internal("Internal server error")
}
