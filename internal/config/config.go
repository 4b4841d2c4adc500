package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates application settings sourced from the environment and an
// optional .env file.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig selects and reaches the relational store.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"sslmode"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// AuthConfig contains API token settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DSN builds a lib/pq key/value connection string, or a SQLite file URI with
// foreign keys enforced.
func (d DatabaseConfig) DSN() string {
	if d.Driver == dbx.DriverSQLite {
		return "file:" + d.Path + "?_pragma=" + url.QueryEscape("foreign_keys(1)")
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Options converts the settings into store options.
func (d DatabaseConfig) Options() dbx.Options {
	return dbx.Options{
		Driver:          d.Driver,
		DSN:             d.DSN(),
		MaxOpenConns:    d.MaxOpenConns,
		MaxIdleConns:    d.MaxIdleConns,
		ConnMaxLifetime: d.ConnMaxLifetime,
	}
}

// Load reads .env (when present) and then the environment. Validation
// failures are configuration errors.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logx.Warnf("could not read .env: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, errx.Wrap(err, "bind env", errx.TypeConfiguration)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errx.Wrap(err, "unmarshal config", errx.TypeConfiguration)
	}

	if err := validate(cfg); err != nil {
		return nil, errx.New(err.Error(), errx.TypeConfiguration)
	}

	return &cfg, nil
}

// MustLoad wraps Load and exits on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		logx.Fatalf("configuration: %v", err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("database.driver", dbx.DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "hirely")
	v.SetDefault("database.user", "hirely")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "hirely.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("auth.issuer", "hirely")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                   "API_PORT",
		"database.driver":            "DATABASE_DRIVER",
		"database.host":              "DATABASE_HOST",
		"database.port":              "DATABASE_PORT",
		"database.name":              "POSTGRES_DB",
		"database.user":              "POSTGRES_USER",
		"database.password":          "POSTGRES_PASSWORD",
		"database.sslmode":           "DATABASE_SSLMODE",
		"database.path":              "SQLITE_PATH",
		"database.max_open_conns":    "DATABASE_MAX_OPEN_CONNS",
		"database.max_idle_conns":    "DATABASE_MAX_IDLE_CONNS",
		"database.conn_max_lifetime": "DATABASE_CONN_MAX_LIFETIME",
		"auth.jwt_secret":            "JWT_SECRET",
		"auth.issuer":                "JWT_ISSUER",
		"auth.token_ttl":             "JWT_TOKEN_TTL",
		"log.level":                  "LOG_LEVEL",
		"log.format":                 "LOG_FORMAT",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}

	switch cfg.Database.Driver {
	case dbx.DriverPostgres:
		if cfg.Database.Host == "" {
			return errors.New("database host is required")
		}
		if cfg.Database.Port <= 0 {
			return errors.New("database port must be positive")
		}
		if cfg.Database.Name == "" {
			return errors.New("database name is required")
		}
		if cfg.Database.User == "" {
			return errors.New("database user is required")
		}
		if cfg.Database.SSLMode == "" {
			return errors.New("database sslmode is required")
		}
	case dbx.DriverSQLite:
		if cfg.Database.Path == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	if _, err := logx.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.Log.Format != string(logx.FormatText) && cfg.Log.Format != string(logx.FormatJSON) {
		return fmt.Errorf("unsupported log format %q", cfg.Log.Format)
	}
	return nil
}

// ApplyLogging configures the global logger from the settings.
func (c *Config) ApplyLogging() {
	level, _ := logx.ParseLevel(c.Log.Level)
	logx.SetOutput(os.Stderr, logx.Format(c.Log.Format))
	logx.SetLevel(level)
}
