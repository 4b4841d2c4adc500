package interviewinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/interview"
	"github.com/jmoiron/sqlx"
)

var storeCodes = dbx.StoreCodes{
	Registry:            interview.ErrRegistry,
	InvalidReference:    interview.CodeInvalidReference,
	ConstraintViolation: interview.CodeConstraintViolation,
	StoreFailure:        interview.CodeStoreFailure,
}

// SQLInterviewRepository implements interview.Repository on PostgreSQL or SQLite
type SQLInterviewRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLInterviewRepository creates a new interview repository
func NewSQLInterviewRepository(db *sqlx.DB) *SQLInterviewRepository {
	return &SQLInterviewRepository{
		db:  db,
		now: time.Now,
	}
}

// WithClock replaces the time source used for created_at and for deciding
// which interviews are upcoming
func (r *SQLInterviewRepository) WithClock(now func() time.Time) *SQLInterviewRepository {
	r.now = now
	return r
}

const selectWithInterviewer = `
	SELECT
		i.interview_id, i.interview_title, i.interviewer_id, i.application_id,
		i.interview_stage, i.interview_date, i.result, i.created_at,
		u.first_name AS interviewer_first_name,
		u.last_name AS interviewer_last_name
	FROM interviews i
	JOIN users u ON u.user_id = i.interviewer_id
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Schedule creates a new pending interview
func (r *SQLInterviewRepository) Schedule(ctx context.Context, params interview.ScheduleParams) (kernel.InterviewID, error) {
	query := r.db.Rebind(`
		INSERT INTO interviews (interview_title, interviewer_id, application_id, interview_stage, interview_date, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING interview_id
	`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		string(params.Title),
		int64(params.InterviewerID),
		int64(params.ApplicationID),
		string(params.Stage),
		dbx.Timestamp(params.ScheduledAt),
		string(interview.ResultPending),
		dbx.Timestamp(r.now()),
	).Scan(&id)
	if err != nil {
		return 0, storeCodes.Translate("schedule", err)
	}

	return kernel.NewInterviewID(id), nil
}

// UpdateResult records the outcome of an interview
func (r *SQLInterviewRepository) UpdateResult(ctx context.Context, id kernel.InterviewID, result interview.Result) (bool, error) {
	return r.setResult(ctx, "update_result", id, result)
}

// Cancel marks an interview cancelled
func (r *SQLInterviewRepository) Cancel(ctx context.Context, id kernel.InterviewID) (bool, error) {
	return r.setResult(ctx, "cancel", id, interview.ResultCancelled)
}

// GetByID retrieves an interview by ID
func (r *SQLInterviewRepository) GetByID(ctx context.Context, id kernel.InterviewID) (*interview.WithInterviewer, error) {
	query := r.db.Rebind(selectWithInterviewer + ` WHERE i.interview_id = ?`)

	var iv interview.WithInterviewer
	if err := r.db.GetContext(ctx, &iv, query, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeCodes.Translate("get_by_id", err)
	}

	return &iv, nil
}

// ListByApplication retrieves an application's interviews
func (r *SQLInterviewRepository) ListByApplication(ctx context.Context, applicationID kernel.ApplicationID) ([]interview.WithInterviewer, error) {
	query := r.db.Rebind(selectWithInterviewer + `
		WHERE i.application_id = ?
		ORDER BY i.interview_date DESC, i.interview_id DESC`)

	interviews := []interview.WithInterviewer{}
	if err := r.db.SelectContext(ctx, &interviews, query, int64(applicationID)); err != nil {
		return nil, storeCodes.Translate("list_by_application", err)
	}
	return interviews, nil
}

// ListUpcoming retrieves pending interviews dated at or after the clock's now
func (r *SQLInterviewRepository) ListUpcoming(ctx context.Context) ([]interview.Upcoming, error) {
	query := r.db.Rebind(`
		SELECT
			i.interview_id, i.interview_title, i.interviewer_id, i.application_id,
			i.interview_stage, i.interview_date, i.result, i.created_at,
			u.first_name AS interviewer_first_name,
			u.last_name AS interviewer_last_name,
			cu.first_name AS candidate_first_name,
			cu.last_name AS candidate_last_name,
			j.title AS job_title
		FROM interviews i
		JOIN users u ON u.user_id = i.interviewer_id
		JOIN applications a ON a.application_id = i.application_id
		JOIN candidates c ON c.candidate_id = a.candidate_id
		JOIN users cu ON cu.user_id = c.user_id
		JOIN jobs j ON j.job_id = a.job_id
		WHERE i.interview_date >= ? AND i.result = ?
		ORDER BY i.interview_date ASC, i.interview_id ASC
	`)

	upcoming := []interview.Upcoming{}
	if err := r.db.SelectContext(ctx, &upcoming, query, dbx.Timestamp(r.now()), string(interview.ResultPending)); err != nil {
		return nil, storeCodes.Translate("list_upcoming", err)
	}
	return upcoming, nil
}

// Delete deletes an interview by ID
func (r *SQLInterviewRepository) Delete(ctx context.Context, id kernel.InterviewID) (bool, error) {
	query := r.db.Rebind(`DELETE FROM interviews WHERE interview_id = ?`)

	result, err := r.db.ExecContext(ctx, query, int64(id))
	return matched(result, err, "delete")
}

// ============================================================================
// Helper Functions
// ============================================================================

func (r *SQLInterviewRepository) setResult(ctx context.Context, operation string, id kernel.InterviewID, result interview.Result) (bool, error) {
	query := r.db.Rebind(`UPDATE interviews SET result = ? WHERE interview_id = ?`)

	res, err := r.db.ExecContext(ctx, query, string(result), int64(id))
	return matched(res, err, operation)
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
