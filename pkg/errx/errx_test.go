package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	err := reg.New(code).WithDetail("widget_id", 7)

	if err.Code != "WIDGET.NOT_FOUND" {
		t.Fatalf("code = %q", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d", err.HTTPStatus)
	}
	if err.Details["widget_id"] != 7 {
		t.Fatalf("details = %v", err.Details)
	}
	if !IsCode(err, code) {
		t.Fatal("IsCode should match the registered code")
	}
	if !IsType(err, TypeNotFound) {
		t.Fatal("IsType should match TypeNotFound")
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	reg := NewRegistry("DUP")
	reg.Register("X", TypeInternal, http.StatusInternalServerError, "x")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	reg.Register("X", TypeInternal, http.StatusInternalServerError, "x")
}

func TestWrapKeepsRegisteredCode(t *testing.T) {
	reg := NewRegistry("THING")
	code := reg.Register("CONSTRAINT", TypeConflict, http.StatusConflict, "Constraint violated")

	inner := reg.New(code)
	wrapped := Wrap(fmt.Errorf("insert: %w", inner), "failed to create thing", TypeInternal)

	if wrapped.Type != TypeConflict {
		t.Fatalf("type = %s, want CONFLICT", wrapped.Type)
	}
	if wrapped.HTTPStatus != http.StatusConflict {
		t.Fatalf("status = %d", wrapped.HTTPStatus)
	}
	if !IsCode(wrapped, code) {
		t.Fatal("wrapped error lost its code")
	}
	if !errors.Is(wrapped, inner) {
		t.Fatal("errors.Is should reach the inner error")
	}
}

func TestWrapPlainError(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := Wrap(cause, "failed to list", TypeInternal)

	if wrapped.Type != TypeInternal || wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected wrap: %+v", wrapped)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("cause not reachable")
	}
	if Wrap(nil, "noop", TypeInternal) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestToHTTPResponseHidesCause(t *testing.T) {
	err := New("bad input", TypeValidation).WithCause(errors.New("secret dsn"))
	resp := err.ToHTTPResponse()

	if resp.Code != "VALIDATION" || resp.Error != "Bad Request" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Message != "bad input" {
		t.Fatalf("message leaked cause: %q", resp.Message)
	}
}

func TestHTTPStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain", errors.New("x"), http.StatusInternalServerError},
		{"typed", New("nope", TypeNotFound), http.StatusNotFound},
		{"config", New("missing dsn", TypeConfiguration), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", New("dup", TypeConflict)), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusOf(tt.err); got != tt.want {
				t.Fatalf("HTTPStatusOf = %d, want %d", got, tt.want)
			}
		})
	}
}
