package config

import (
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Port != 5432 {
		t.Fatalf("database defaults = %+v", cfg.Database)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("conn_max_lifetime = %v", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("token_ttl = %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/hirely.db")
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_TOKEN_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.Port != 9090 {
		t.Fatalf("api port = %d", cfg.API.Port)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("token ttl = %v", cfg.Auth.TokenTTL)
	}
	dsn := cfg.Database.DSN()
	if !strings.HasPrefix(dsn, "file:/tmp/hirely.db?") || !strings.Contains(dsn, "foreign_keys") {
		t.Fatalf("sqlite dsn = %q", dsn)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DATABASE_DRIVER": "oracle"}},
		{"zero token ttl", map[string]string{"JWT_TOKEN_TTL": "0s"}},
		{"bad port", map[string]string{"API_PORT": "-1"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errx.IsType(err, errx.TypeConfiguration) {
				t.Fatalf("error type = %v", err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db",
		Port:     5432,
		Name:     "hirely",
		User:     "app",
		Password: "secret",
		SSLMode:  "disable",
	}
	want := "host=db port=5432 user=app password=secret dbname=hirely sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("DSN = %q", got)
	}
	if opts := d.Options(); opts.Driver != "postgres" || opts.DSN != want {
		t.Fatalf("Options = %+v", opts)
	}
}
