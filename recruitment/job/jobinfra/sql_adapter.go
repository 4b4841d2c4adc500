package jobinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/job"
	"github.com/jmoiron/sqlx"
)

var storeCodes = dbx.StoreCodes{
	Registry:            job.ErrRegistry,
	InvalidReference:    job.CodeInvalidReference,
	ConstraintViolation: job.CodeConstraintViolation,
	StoreFailure:        job.CodeStoreFailure,
}

// SQLJobRepository implements job.Repository on PostgreSQL or SQLite
type SQLJobRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLJobRepository creates a new job repository on a shared store handle
func NewSQLJobRepository(db *sqlx.DB) *SQLJobRepository {
	return &SQLJobRepository{
		db:  db,
		now: time.Now,
	}
}

// WithClock replaces the time source used for created_at
func (r *SQLJobRepository) WithClock(now func() time.Time) *SQLJobRepository {
	r.now = now
	return r
}

const selectDetails = `
	SELECT
		j.job_id, j.company_id, j.department_id, j.title, j.description,
		j.status, j.created_at,
		c.company_name,
		d.name AS department_name,
		(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.job_id) AS application_count
	FROM jobs j
	JOIN companies c ON c.company_id = j.company_id
	JOIN departments d ON d.department_id = j.department_id
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *SQLJobRepository) Create(ctx context.Context, params job.CreateParams) (kernel.JobID, error) {
	query := r.db.Rebind(`
		INSERT INTO jobs (company_id, department_id, title, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING job_id
	`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		int64(params.CompanyID),
		int64(params.DepartmentID),
		string(params.Title),
		string(params.Description),
		string(params.Status),
		dbx.Timestamp(r.now()),
	).Scan(&id)
	if err != nil {
		return 0, storeCodes.Translate("create", err)
	}

	return kernel.NewJobID(id), nil
}

// Update replaces title, description and status
func (r *SQLJobRepository) Update(ctx context.Context, id kernel.JobID, params job.UpdateParams) (bool, error) {
	query := r.db.Rebind(`
		UPDATE jobs SET
			title = ?,
			description = ?,
			status = ?
		WHERE job_id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		string(params.Title),
		string(params.Description),
		string(params.Status),
		int64(id),
	)
	return matched(result, err, "update")
}

// UpdateStatus sets the status only
func (r *SQLJobRepository) UpdateStatus(ctx context.Context, id kernel.JobID, status job.Status) (bool, error) {
	query := r.db.Rebind(`UPDATE jobs SET status = ? WHERE job_id = ?`)

	result, err := r.db.ExecContext(ctx, query, string(status), int64(id))
	return matched(result, err, "update_status")
}

// GetByID retrieves a job by ID
func (r *SQLJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Details, error) {
	query := r.db.Rebind(selectDetails + ` WHERE j.job_id = ?`)

	var details job.Details
	err := r.db.GetContext(ctx, &details, query, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeCodes.Translate("get_by_id", err)
	}

	return &details, nil
}

// ListAll retrieves all jobs, newest first
func (r *SQLJobRepository) ListAll(ctx context.Context) ([]job.Details, error) {
	return r.list(ctx, "list_all", selectDetails+` ORDER BY j.created_at DESC, j.job_id DESC`)
}

// ListOpen retrieves open jobs, newest first
func (r *SQLJobRepository) ListOpen(ctx context.Context) ([]job.Details, error) {
	return r.list(ctx, "list_open",
		selectDetails+` WHERE j.status = ? ORDER BY j.created_at DESC, j.job_id DESC`,
		string(job.StatusOpen),
	)
}

// ListByCompany retrieves the jobs of one company, newest first
func (r *SQLJobRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]job.Details, error) {
	return r.list(ctx, "list_by_company",
		selectDetails+` WHERE j.company_id = ? ORDER BY j.created_at DESC, j.job_id DESC`,
		int64(companyID),
	)
}

// Statistics counts a company's jobs by status. Applications are counted in a
// sub-select so the job rows are not multiplied by the join.
func (r *SQLJobRepository) Statistics(ctx context.Context, companyID kernel.CompanyID) (*job.Statistics, error) {
	query := r.db.Rebind(`
		SELECT
			COUNT(*) AS total_jobs,
			COALESCE(SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END), 0) AS open_jobs,
			COALESCE(SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END), 0) AS closed_jobs,
			COALESCE(SUM(CASE WHEN status = 'on_hold' THEN 1 ELSE 0 END), 0) AS on_hold_jobs,
			(
				SELECT COUNT(DISTINCT a.application_id)
				FROM applications a
				JOIN jobs aj ON aj.job_id = a.job_id
				WHERE aj.company_id = ?
			) AS total_applications
		FROM jobs
		WHERE company_id = ?
	`)

	var stats job.Statistics
	if err := r.db.GetContext(ctx, &stats, query, int64(companyID), int64(companyID)); err != nil {
		return nil, storeCodes.Translate("statistics", err)
	}
	stats.CompanyID = companyID

	return &stats, nil
}

// Delete deletes a job by ID
func (r *SQLJobRepository) Delete(ctx context.Context, id kernel.JobID) (bool, error) {
	query := r.db.Rebind(`DELETE FROM jobs WHERE job_id = ?`)

	result, err := r.db.ExecContext(ctx, query, int64(id))
	return matched(result, err, "delete")
}

// ============================================================================
// Helper Functions
// ============================================================================

func (r *SQLJobRepository) list(ctx context.Context, operation, query string, args ...any) ([]job.Details, error) {
	jobs := []job.Details{}
	if err := r.db.SelectContext(ctx, &jobs, r.db.Rebind(query), args...); err != nil {
		return nil, storeCodes.Translate(operation, err)
	}
	return jobs, nil
}

// matched reports whether a single row statement hit exactly one row
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
