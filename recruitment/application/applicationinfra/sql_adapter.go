package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/application"
	"github.com/jmoiron/sqlx"
)

var storeCodes = dbx.StoreCodes{
	Registry:            application.ErrRegistry,
	InvalidReference:    application.CodeInvalidReference,
	ConstraintViolation: application.CodeConstraintViolation,
	StoreFailure:        application.CodeStoreFailure,
}

// SQLApplicationRepository implements application.Repository on PostgreSQL or SQLite
type SQLApplicationRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLApplicationRepository creates a new application repository
func NewSQLApplicationRepository(db *sqlx.DB) *SQLApplicationRepository {
	return &SQLApplicationRepository{
		db:  db,
		now: time.Now,
	}
}

// WithClock replaces the time source used for applied_date and updated_at
func (r *SQLApplicationRepository) WithClock(now func() time.Time) *SQLApplicationRepository {
	r.now = now
	return r
}

const applicationColumns = `a.application_id, a.job_id, a.candidate_id, a.current_status, a.applied_date, a.updated_at`

const mostRecentFirst = ` ORDER BY a.applied_date DESC, a.application_id DESC`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application. applied_date and updated_at start equal.
func (r *SQLApplicationRepository) Create(ctx context.Context, params application.CreateParams) (kernel.ApplicationID, error) {
	query := r.db.Rebind(`
		INSERT INTO applications (job_id, candidate_id, current_status, applied_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING application_id
	`)

	now := dbx.Timestamp(r.now())
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		int64(params.JobID),
		int64(params.CandidateID),
		string(params.Status),
		now,
		now,
	).Scan(&id)
	if err != nil {
		return 0, storeCodes.Translate("create", err)
	}

	return kernel.NewApplicationID(id), nil
}

// UpdateStatus sets the current status
func (r *SQLApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.Status) (bool, error) {
	query := r.db.Rebind(`UPDATE applications SET current_status = ?, updated_at = ? WHERE application_id = ?`)

	result, err := r.db.ExecContext(ctx, query, string(status), dbx.Timestamp(r.now()), int64(id))
	return matched(result, err, "update_status")
}

// GetByID retrieves an application by ID
func (r *SQLApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := r.db.Rebind(`SELECT ` + applicationColumns + ` FROM applications a WHERE a.application_id = ?`)

	var app application.Application
	if err := r.db.GetContext(ctx, &app, query, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeCodes.Translate("get_by_id", err)
	}

	return &app, nil
}

// ListByJob retrieves a job's applications with applicant details
func (r *SQLApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID) ([]application.WithCandidate, error) {
	query := r.db.Rebind(`
		SELECT ` + applicationColumns + `,
			c.resume_url, u.first_name, u.last_name, u.email
		FROM applications a
		JOIN candidates c ON c.candidate_id = a.candidate_id
		JOIN users u ON u.user_id = c.user_id
		WHERE a.job_id = ?` + mostRecentFirst)

	apps := []application.WithCandidate{}
	if err := r.db.SelectContext(ctx, &apps, query, int64(jobID)); err != nil {
		return nil, storeCodes.Translate("list_by_job", err)
	}
	return apps, nil
}

// ListByCandidate retrieves a candidate's applications with job details
func (r *SQLApplicationRepository) ListByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]application.WithJob, error) {
	query := r.db.Rebind(`
		SELECT ` + applicationColumns + `,
			j.title, j.description, co.company_name
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		JOIN companies co ON co.company_id = j.company_id
		WHERE a.candidate_id = ?` + mostRecentFirst)

	apps := []application.WithJob{}
	if err := r.db.SelectContext(ctx, &apps, query, int64(candidateID)); err != nil {
		return nil, storeCodes.Translate("list_by_candidate", err)
	}
	return apps, nil
}

// ListByStatus retrieves applications in one status
func (r *SQLApplicationRepository) ListByStatus(ctx context.Context, status application.Status) ([]application.Application, error) {
	query := r.db.Rebind(`SELECT ` + applicationColumns + ` FROM applications a WHERE a.current_status = ?` + mostRecentFirst)

	apps := []application.Application{}
	if err := r.db.SelectContext(ctx, &apps, query, string(status)); err != nil {
		return nil, storeCodes.Translate("list_by_status", err)
	}
	return apps, nil
}

// Delete deletes an application by ID
func (r *SQLApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) (bool, error) {
	query := r.db.Rebind(`DELETE FROM applications WHERE application_id = ?`)

	result, err := r.db.ExecContext(ctx, query, int64(id))
	return matched(result, err, "delete")
}

func matched(result sql.Result, err error, operation string) (bool, error) {
	if err != nil {
		return false, storeCodes.Translate(operation, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, storeCodes.Translate(operation, err)
	}

	return rows == 1, nil
}
