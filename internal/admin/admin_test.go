package admin

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/dbx"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver: dbx.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "admin.db"),
		},
		Auth: config.AuthConfig{
			JWTSecret: "admin-secret",
			Issuer:    "hirely",
			TokenTTL:  time.Hour,
		},
	}
}

func TestMigrateAndPing(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		if err := Run(ctx, cfg, []string{"migrate"}, &out); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
		if !strings.Contains(out.String(), "migrations applied") {
			t.Fatalf("migrate output = %q", out.String())
		}
	}

	var out bytes.Buffer
	if err := Run(ctx, cfg, []string{"ping"}, &out); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if !strings.Contains(out.String(), "sqlite store is reachable") {
		t.Fatalf("ping output = %q", out.String())
	}
}

func TestToken(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	args := []string{"token", "--subject", "recruiter", "--scope", "jobs:read,offers:*", "--ttl", "10m"}
	if err := Run(context.Background(), cfg, args, &out); err != nil {
		t.Fatalf("token: %v", err)
	}

	tokens, _ := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Hour)
	claims, err := tokens.Validate(strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "recruiter" || len(claims.Scopes) != 2 || claims.Scopes[1] != auth.ScopeOffersAll {
		t.Fatalf("claims = %+v", claims)
	}
	if life := claims.ExpiresAt.Sub(claims.IssuedAt.Time); life != 10*time.Minute {
		t.Fatalf("lifetime = %v", life)
	}
}

func TestTokenRejections(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	if err := Run(ctx, cfg, []string{"token", "--scope", "jobs:fly"}, &bytes.Buffer{}); err == nil || ExitCode(err) != 1 {
		t.Fatalf("unknown scope = %v", err)
	}
	if err := Run(ctx, cfg, []string{"token", "--bogus"}, &bytes.Buffer{}); ExitCode(err) != 2 {
		t.Fatalf("bad flag = %v", err)
	}

	cfg.Auth.JWTSecret = ""
	if err := Run(ctx, cfg, []string{"token"}, &bytes.Buffer{}); ExitCode(err) != 3 {
		t.Fatalf("missing secret = %v", err)
	}
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), testConfig(t), []string{"frobnicate"}, &out)
	if !errors.Is(err, ErrUsage) || !strings.Contains(out.String(), "Usage: hirely-admin") {
		t.Fatalf("unknown command = %v, %q", err, out.String())
	}
	if err := Run(context.Background(), testConfig(t), nil, &bytes.Buffer{}); !errors.Is(err, ErrUsage) {
		t.Fatalf("no command = %v", err)
	}

	out.Reset()
	if err := Run(context.Background(), testConfig(t), []string{"scopes"}, &out); err != nil {
		t.Fatalf("scopes: %v", err)
	}
	if !strings.Contains(out.String(), auth.ScopeReportsRead) {
		t.Fatalf("scopes output = %q", out.String())
	}
}
