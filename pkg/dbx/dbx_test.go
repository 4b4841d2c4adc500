package dbx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func openMemory(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), Options{
		Driver:       DriverSQLite,
		DSN:          "file::memory:?_pragma=foreign_keys(1)",
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenRejectsMisconfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown driver", Options{Driver: "mysql", DSN: "x"}},
		{"empty dsn", Options{Driver: DriverPostgres}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(context.Background(), tt.opts)
			if !errx.IsCode(err, CodeMisconfigured) {
				t.Fatalf("err = %v, want %s", err, CodeMisconfigured.Code)
			}
			if !errx.IsType(err, errx.TypeConfiguration) {
				t.Fatalf("type of %v is not configuration", err)
			}
		})
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("first Migrate: %v", err)
	}
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM schema_migrations"); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(Migrations) {
		t.Fatalf("recorded %d migrations, want %d", n, len(Migrations))
	}
}

func TestClassifySQLiteConstraints(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	_, err := db.Exec(`INSERT INTO departments (company_id, name) VALUES (999, 'Ghost')`)
	if got := Classify(err); got != ViolationForeignKey {
		t.Fatalf("foreign key: Classify(%v) = %s", err, got)
	}

	if _, err := db.Exec(`INSERT INTO users (first_name, last_name, email) VALUES ('a', 'b', 'x@y.z')`); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (first_name, last_name, email) VALUES ('c', 'd', 'x@y.z')`)
	if got := Classify(err); got != ViolationUnique {
		t.Fatalf("unique: Classify(%v) = %s", err, got)
	}

	_, err = db.Exec(`INSERT INTO companies (company_name) VALUES (NULL)`)
	if got := Classify(err); got != ViolationNotNull {
		t.Fatalf("not null: Classify(%v) = %s", err, got)
	}
}

func TestClassifyPostgresCodes(t *testing.T) {
	tests := []struct {
		code pq.ErrorCode
		want Violation
	}{
		{"23503", ViolationForeignKey},
		{"23505", ViolationUnique},
		{"23514", ViolationCheck},
		{"22003", ViolationCheck},
		{"22001", ViolationCheck},
		{"23502", ViolationNotNull},
		{"08006", ViolationConnection},
		{"42601", ViolationNone},
	}
	for _, tt := range tests {
		err := fmt.Errorf("exec: %w", &pq.Error{Code: tt.code})
		if got := Classify(err); got != tt.want {
			t.Fatalf("Classify(%s) = %s, want %s", tt.code, got, tt.want)
		}
	}
	if Classify(errors.New("plain")) != ViolationNone {
		t.Fatal("plain errors are not violations")
	}
	if !ViolationCheck.IsConstraint() || ViolationConnection.IsConstraint() {
		t.Fatal("IsConstraint mismatch")
	}
}
