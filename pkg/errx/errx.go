package errx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// Type classifies an error so callers can react without matching codes
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
	TypeConfiguration Type = "CONFIGURATION"
)

// defaultStatus maps a Type to the HTTP status used when none is registered
func (t Type) defaultStatus() int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error value shared by every domain package
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString("[")
		b.WriteString(e.Code)
		b.WriteString("] ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a single key/value detail
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a set of details
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// WithCause sets the wrapped error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// HTTPResponse is the body written by the HTTP error handler
type HTTPResponse struct {
	Error   string         `json:"error"`
	Type    Type           `json:"type"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToHTTPResponse renders the error for API clients. Causes are never exposed.
func (e *Error) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Error:   http.StatusText(e.HTTPStatus),
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// New creates an unregistered error
func New(message string, t Type) *Error {
	return &Error{
		Code:       string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: t.defaultStatus(),
	}
}

// Wrap wraps err. An *Error already in the chain keeps its code, type and
// status; only the message is prefixed.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:       existing.Code,
			Type:       existing.Type,
			Message:    fmt.Sprintf("%s: %s", message, existing.Message),
			HTTPStatus: existing.HTTPStatus,
			Details:    cloneDetails(existing.Details),
			Cause:      err,
		}
	}
	return New(message, t).WithCause(err)
}

// IsType reports whether any *Error in the chain has the given type
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsCode reports whether any *Error in the chain carries the code
func IsCode(err error, code Code) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code.Code {
			return true
		}
		err = e.Cause
	}
	return false
}

// HTTPStatusOf returns the status to use for err
func HTTPStatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return http.StatusInternalServerError
}

func cloneDetails(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ============================================================================
// Registry
// ============================================================================

// Code identifies a registered error
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry namespaces the codes of one domain, e.g. "JOB.NOT_FOUND"
type Registry struct {
	prefix string
	mu     sync.RWMutex
	codes  map[string]Code
}

// NewRegistry creates a registry for a domain prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]Code),
	}
}

// Register declares a code. Registering the same code twice panics.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := r.prefix + "." + code

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codes[full]; exists {
		panic(fmt.Sprintf("errx: code %s registered twice", full))
	}

	c := Code{Code: full, Type: t, HTTPStatus: httpStatus, Message: message}
	r.codes[full] = c
	return c
}

// New creates an error for a registered code
func (r *Registry) New(code Code) *Error {
	return &Error{
		Code:       code.Code,
		Type:       code.Type,
		Message:    code.Message,
		HTTPStatus: code.HTTPStatus,
	}
}

// NewWithCause creates an error for a registered code wrapping cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}

// Codes lists every registered code
func (r *Registry) Codes() []Code {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Code, 0, len(r.codes))
	for _, c := range r.codes {
		out = append(out, c)
	}
	return out
}
