// Package apitest builds fiber apps wired like the server for handler tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

// Harness is an app plus a token service to authenticate against it
type Harness struct {
	App        *fiber.App
	Middleware *auth.Middleware
	tokens     *auth.TokenService
}

// New creates an app with the server's error handler and middleware.
func New(t *testing.T) *Harness {
	t.Helper()
	tokens, err := auth.NewTokenService("apitest-secret", "hirely", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	app.Use(httpx.CorrelationID())
	return &Harness{App: app, Middleware: auth.NewMiddleware(tokens), tokens: tokens}
}

// Token issues a bearer token with scopes.
func (h *Harness) Token(t *testing.T, scopes ...string) string {
	t.Helper()
	token, err := h.tokens.Issue("tester", scopes)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// Do sends a request and decodes a JSON response into out when out is not nil.
// Error responses are not decoded.
func (h *Harness) Do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()
	return h.send(t, method, path, token, body, out, false)
}

// ErrorBody is the JSON shape of a failed request, for both errx and fiber errors
type ErrorBody struct {
	Error   string         `json:"error"`
	Code    any            `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// Fail sends a request expected to fail and decodes its error body.
func (h *Harness) Fail(t *testing.T, method, path, token string, body any) (int, ErrorBody) {
	t.Helper()
	var out ErrorBody
	status := h.send(t, method, path, token, body, &out, true)
	return status, out
}

func (h *Harness) send(t *testing.T, method, path, token string, body any, out any, failure bool) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.App.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil && (resp.StatusCode < http.StatusMultipleChoices) != failure {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return resp.StatusCode
}
