package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies every failure the client layer can report.
type Kind int

const (
	// KindValidation means input was rejected before any network call.
	KindValidation Kind = iota + 1
	// KindTransport means no response was received.
	KindTransport
	// KindHTTP means the backend answered with a non-2xx status.
	KindHTTP
	// KindDecode means the response body did not match the expected shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Error is the single error type returned by the client layer.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	// Fields holds per-field messages of a validation error.
	Fields map[string]string
	Body   []byte
	Err    error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("request failed with status %d", e.Status)
	case KindTransport:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("malformed response: %v", e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error from per-field messages.
func NewValidationError(fields map[string]string) *Error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fields[name])
	}
	return &Error{Kind: KindValidation, Message: strings.Join(messages, "; "), Fields: fields}
}

// NewValidationMessage creates a validation error not tied to a field.
func NewValidationMessage(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func newHTTPError(status int, body []byte) *Error {
	return &Error{Kind: KindHTTP, Status: status, Message: bodyMessage(body), Body: body}
}

// bodyMessage extracts the backend "message" field, if any.
func bodyMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

// Message normalizes err into the text shown to a user: the error's own
// message when it carries one, fallback otherwise.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	return fallback
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// StatusCode returns the HTTP status of an HTTP error, 0 otherwise.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindHTTP {
		return apiErr.Status
	}
	return 0
}
