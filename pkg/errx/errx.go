package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping and logging
type Type string

const (
	TypeValidation Type = "VALIDATION"
	TypeNotFound   Type = "NOT_FOUND"
	TypeInternal   Type = "INTERNAL"
)

// Code is a fully qualified error code, e.g. "PREDICTION_EMBEDDING_FAILED"
type Code string

// Error is the canonical application error. It carries everything the HTTP
// layer needs to build a response without switching on sentinel values.
type Error struct {
	Type       Type           `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a single key/value pair to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a map of details into the error
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// HTTPResponse is the JSON body sent to clients for an *Error
type HTTPResponse struct {
	Type    Type           `json:"type"`
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToHTTPResponse shapes the error for the API layer. The cause is never
// exposed to clients.
func (e *Error) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// Wrap converts an arbitrary error into an *Error. Existing *Error values
// pass through untouched so their code and status survive service layers.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Type:       t,
		Code:       Code(fmt.Sprintf("%s_ERROR", t)),
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		cause:      err,
	}
}
