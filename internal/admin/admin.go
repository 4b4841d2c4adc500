// Package admin implements the operator commands: applying migrations,
// checking the store and issuing API tokens.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/spf13/pflag"
)

// ErrUsage reports an unknown command or bad flags
var ErrUsage = errors.New("usage")

const usage = `Usage: hirely-admin <command> [flags]

Commands:
  migrate   apply pending schema migrations
  ping      check that the store answers
  token     issue an API token (--subject, --scope, --ttl)
  scopes    list the scopes a token may carry
`

// Run executes the command named by args[0]
func Run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return ErrUsage
	}

	switch args[0] {
	case "migrate":
		return migrate(ctx, cfg, out)
	case "ping":
		return ping(ctx, cfg, out)
	case "token":
		return token(cfg, args[1:], out)
	case "scopes":
		return scopes(out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	}

	fmt.Fprint(out, usage)
	return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
}

func migrate(ctx context.Context, cfg *config.Config, out io.Writer) error {
	db, err := dbx.Open(ctx, cfg.Database.Options())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := dbx.Migrate(ctx, db); err != nil {
		return err
	}
	logx.WithFields(logx.Fields{"driver": cfg.Database.Driver}).Info("migrations applied")
	fmt.Fprintln(out, "migrations applied")
	return nil
}

func ping(ctx context.Context, cfg *config.Config, out io.Writer) error {
	db, err := dbx.Open(ctx, cfg.Database.Options())
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(out, "%s store is reachable\n", cfg.Database.Driver)
	return nil
}

func token(cfg *config.Config, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("token", pflag.ContinueOnError)
	fs.SetOutput(out)
	subject := fs.String("subject", "admin", "token subject")
	scopeList := fs.StringSlice("scope", []string{auth.ScopeAll}, "scope to grant, repeatable or comma separated")
	ttl := fs.Duration("ttl", cfg.Auth.TokenTTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if strings.TrimSpace(*subject) == "" {
		return fmt.Errorf("%w: --subject must not be empty", ErrUsage)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, *ttl)
	if err != nil {
		return err
	}
	signed, err := tokens.Issue(*subject, *scopeList)
	if err != nil {
		return err
	}

	logx.WithFields(logx.Fields{"subject": *subject, "scopes": *scopeList, "ttl": ttl.String()}).Info("token issued")
	fmt.Fprintln(out, signed)
	return nil
}

func scopes(out io.Writer) error {
	for _, s := range auth.KnownScopes() {
		fmt.Fprintf(out, "%-22s %s\n", s, auth.ScopeDescriptions[s])
	}
	return nil
}

// ExitCode maps a command error to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	case errx.IsType(err, errx.TypeConfiguration):
		return 3
	}
	return 1
}
