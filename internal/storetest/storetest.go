// Package storetest opens isolated, migrated in-memory SQLite stores (or, when
// configured, a throwaway PostgreSQL schema) and seeds the directory tables
// (users, companies, departments) that the recruitment entities reference.
package storetest

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Open returns a fresh migrated database that is closed when the test ends.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := dbx.Open(ctx, dbx.Options{
		Driver: dbx.DriverSQLite,
		DSN:    "file::memory:?_pragma=foreign_keys(1)",
		// one connection keeps the in-memory database alive and shared
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := dbx.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// OpenPostgres returns a migrated store in a fresh schema of the PostgreSQL
// server described by the DATABASE_* and POSTGRES_* variables. The schema is
// dropped when the test ends. The test is skipped unless DATABASE_HOST is set.
func OpenPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if os.Getenv("DATABASE_HOST") == "" {
		t.Skip("DATABASE_HOST not set; skipping PostgreSQL store")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Database.Driver != dbx.DriverPostgres {
		t.Skipf("DATABASE_DRIVER is %q; skipping PostgreSQL store", cfg.Database.Driver)
	}

	ctx := context.Background()
	opts := cfg.Database.Options()
	admin, err := dbx.Open(ctx, opts)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { _ = admin.Close() })

	schema := "hirely_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if _, err := admin.ExecContext(ctx, "CREATE SCHEMA "+schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		if _, err := admin.ExecContext(context.Background(), "DROP SCHEMA "+schema+" CASCADE"); err != nil {
			t.Errorf("drop schema %s: %v", schema, err)
		}
	})

	opts.DSN += " search_path=" + schema
	db, err := dbx.Open(ctx, opts)
	if err != nil {
		t.Fatalf("open schema %s: %v", schema, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := dbx.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Clock is a fake time source that advances one second per reading.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time and then advances it.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

// Peek returns the next value Now will yield without advancing.
func (c *Clock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// User inserts a user row.
func User(t *testing.T, db *sqlx.DB, first, last, email string) kernel.UserID {
	t.Helper()
	var id int64
	q := db.Rebind(`INSERT INTO users (first_name, last_name, email, phone) VALUES (?, ?, ?, ?) RETURNING user_id`)
	if err := db.QueryRowx(q, first, last, email, "555-0100").Scan(&id); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return kernel.NewUserID(id)
}

// Company inserts a company row.
func Company(t *testing.T, db *sqlx.DB, name string) kernel.CompanyID {
	t.Helper()
	var id int64
	q := db.Rebind(`INSERT INTO companies (company_name) VALUES (?) RETURNING company_id`)
	if err := db.QueryRowx(q, name).Scan(&id); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return kernel.NewCompanyID(id)
}

// Department inserts a department row belonging to company.
func Department(t *testing.T, db *sqlx.DB, company kernel.CompanyID, name string) kernel.DepartmentID {
	t.Helper()
	var id int64
	q := db.Rebind(`INSERT INTO departments (company_id, name) VALUES (?, ?) RETURNING department_id`)
	if err := db.QueryRowx(q, int64(company), name).Scan(&id); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	return kernel.NewDepartmentID(id)
}

// Directory is the common fixture: one company, one department and two users.
type Directory struct {
	Company     kernel.CompanyID
	Department  kernel.DepartmentID
	Candidate   kernel.UserID
	Interviewer kernel.UserID
}

// SeedDirectory inserts the common fixture.
func SeedDirectory(t *testing.T, db *sqlx.DB) Directory {
	t.Helper()
	company := Company(t, db, "Acme")
	return Directory{
		Company:     company,
		Department:  Department(t, db, company, "Engineering"),
		Candidate:   User(t, db, "Ada", "Lovelace", "ada@example.com"),
		Interviewer: User(t, db, "Grace", "Hopper", "grace@example.com"),
	}
}

// Job inserts an open job directly, bypassing the job repository.
func Job(t *testing.T, db *sqlx.DB, dir Directory, title string) kernel.JobID {
	t.Helper()
	var id int64
	q := db.Rebind(`INSERT INTO jobs (company_id, department_id, title, description, status, created_at)
		VALUES (?, ?, ?, '', 'open', ?) RETURNING job_id`)
	if err := db.QueryRowx(q, int64(dir.Company), int64(dir.Department), title, time.Now().UTC()).Scan(&id); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return kernel.NewJobID(id)
}

// Candidate inserts a candidate for user directly.
func Candidate(t *testing.T, db *sqlx.DB, user kernel.UserID) kernel.CandidateID {
	t.Helper()
	var id int64
	q := db.Rebind(`INSERT INTO candidates (user_id, created_at) VALUES (?, ?) RETURNING candidate_id`)
	if err := db.QueryRowx(q, int64(user), time.Now().UTC()).Scan(&id); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	return kernel.NewCandidateID(id)
}

// Application inserts an application in status directly.
func Application(t *testing.T, db *sqlx.DB, job kernel.JobID, candidate kernel.CandidateID, status string) kernel.ApplicationID {
	t.Helper()
	var id int64
	now := time.Now().UTC()
	q := db.Rebind(`INSERT INTO applications (job_id, candidate_id, current_status, applied_date, updated_at)
		VALUES (?, ?, ?, ?, ?) RETURNING application_id`)
	if err := db.QueryRowx(q, int64(job), int64(candidate), status, now, now).Scan(&id); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return kernel.NewApplicationID(id)
}
