package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/gofiber/fiber/v2"
)

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name    string
		matched bool
		err     error
		want    string
	}{
		{"ok", true, nil, OutcomeOK},
		{"no match", false, nil, OutcomeNoMatch},
		{"validation", false, errx.New("bad", errx.TypeValidation), OutcomeRejected},
		{"constraint", false, errx.New("fk", errx.TypeConflict), OutcomeRejected},
		{"store", false, errors.New("io"), OutcomeError},
	}
	for _, tt := range tests {
		if got := outcomeOf(tt.matched, tt.err); got != tt.want {
			t.Fatalf("%s: outcomeOf = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestFiberMiddlewareAndHandler(t *testing.T) {
	app := fiber.New()
	app.Use(FiberMiddleware())
	app.Get("/ping/:id", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", Handler())

	ObserveStoreOp("widget", "delete", time.Now(), false, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping/7", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("ping: %v %v", resp, err)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `hirely_http_requests_total{method="GET",path="/ping/:id",status="200"}`) {
		t.Fatalf("route metric missing from:\n%s", body)
	}
	if !strings.Contains(string(body), `hirely_store_operations_total{entity="widget",operation="delete",outcome="no_match"} 1`) {
		t.Fatalf("store metric missing from:\n%s", body)
	}
}
