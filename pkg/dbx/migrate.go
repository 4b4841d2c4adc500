package dbx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/jmoiron/sqlx"
)

// Migration is one named, ordered schema change. Statements may use the
// {{pk}} and {{ts}} placeholders, expanded per dialect.
type Migration struct {
	Name       string
	Statements []string
}

var dialects = map[string]*strings.Replacer{
	DriverPostgres: strings.NewReplacer("{{pk}}", "BIGSERIAL PRIMARY KEY", "{{ts}}", "TIMESTAMPTZ"),
	DriverSQLite:   strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{ts}}", "TIMESTAMP"),
}

// Migrations is the schema of the recruitment store in apply order
var Migrations = []Migration{
	{
		Name: "0001_directory_tables",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				user_id {{pk}},
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				phone TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS companies (
				company_id {{pk}},
				company_name TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS departments (
				department_id {{pk}},
				company_id BIGINT REFERENCES companies(company_id),
				name TEXT NOT NULL
			)`,
		},
	},
	{
		Name: "0002_jobs",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS jobs (
				job_id {{pk}},
				company_id BIGINT NOT NULL REFERENCES companies(company_id),
				department_id BIGINT NOT NULL REFERENCES departments(department_id),
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL CHECK (status IN ('open', 'closed', 'on_hold')),
				created_at {{ts}} NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_id)`,
		},
	},
	{
		Name: "0003_candidates",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS candidates (
				candidate_id {{pk}},
				user_id BIGINT NOT NULL UNIQUE REFERENCES users(user_id),
				resume_url TEXT,
				created_at {{ts}} NOT NULL
			)`,
		},
	},
	{
		Name: "0004_applications",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS applications (
				application_id {{pk}},
				job_id BIGINT NOT NULL REFERENCES jobs(job_id),
				candidate_id BIGINT NOT NULL REFERENCES candidates(candidate_id),
				current_status TEXT NOT NULL CHECK (current_status IN ('applied', 'screened', 'interview', 'offer', 'rejected')),
				applied_date {{ts}} NOT NULL,
				updated_at {{ts}} NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id)`,
			`CREATE INDEX IF NOT EXISTS idx_applications_candidate ON applications(candidate_id)`,
		},
	},
	{
		Name: "0005_interviews",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS interviews (
				interview_id {{pk}},
				interview_title TEXT NOT NULL,
				interviewer_id BIGINT NOT NULL REFERENCES users(user_id),
				application_id BIGINT NOT NULL REFERENCES applications(application_id),
				interview_stage TEXT NOT NULL CHECK (interview_stage IN ('HR', 'Technical', 'Managerial')),
				interview_date {{ts}} NOT NULL,
				result TEXT NOT NULL DEFAULT 'pending' CHECK (result IN ('pass', 'fail', 'pending', 'cancelled')),
				created_at {{ts}} NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_interviews_application ON interviews(application_id)`,
		},
	},
	{
		Name: "0006_offers",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS offers (
				offer_id {{pk}},
				application_id BIGINT NOT NULL REFERENCES applications(application_id),
				salary_offered NUMERIC(12,2) NOT NULL CHECK (salary_offered >= 0),
				status TEXT NOT NULL CHECK (status IN ('pending', 'accepted', 'declined')),
				offer_date {{ts}} NOT NULL,
				updated_at {{ts}} NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_offers_application ON offers(application_id)`,
		},
	},
}

// Migrate applies every migration not yet recorded in schema_migrations.
// Each migration is recorded after all of its statements succeed.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dialect, ok := dialects[db.DriverName()]
	if !ok {
		return ErrRegistry.New(CodeMisconfigured).
			WithDetail("driver", db.DriverName()).
			WithDetail("reason", "no migration dialect")
	}

	logx.Info("Starting database migrations")

	if _, err := db.ExecContext(ctx, dialect.Replace(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at {{ts}} NOT NULL
	)`)); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, "SELECT name FROM schema_migrations"); err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	for _, m := range Migrations {
		if done[m.Name] {
			continue
		}
		for _, stmt := range m.Statements {
			if _, err := db.ExecContext(ctx, dialect.Replace(stmt)); err != nil {
				logx.WithFields(logx.Fields{"name": m.Name, "error": err}).Error("Migration failed")
				return fmt.Errorf("migration %s: %w", m.Name, err)
			}
		}

		record := db.Rebind("INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)")
		if _, err := db.ExecContext(ctx, record, m.Name, time.Now().UTC()); err != nil {
			return fmt.Errorf("record migration %s: %w", m.Name, err)
		}
		logx.WithFields(logx.Fields{"name": m.Name}).Info("Migration completed")
	}

	logx.Info("All migrations completed successfully")
	return nil
}
