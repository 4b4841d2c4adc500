package candidateinfra

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/candidate"
	"github.com/jmoiron/sqlx"
)

var storeCodes = dbx.StoreCodes{
	Registry:            candidate.ErrRegistry,
	InvalidReference:    candidate.CodeInvalidReference,
	ConstraintViolation: candidate.CodeConstraintViolation,
	StoreFailure:        candidate.CodeStoreFailure,
}

// SQLCandidateRepository implements candidate.Repository on PostgreSQL or SQLite
type SQLCandidateRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLCandidateRepository creates a new candidate repository
func NewSQLCandidateRepository(db *sqlx.DB) *SQLCandidateRepository {
	return &SQLCandidateRepository{
		db:  db,
		now: time.Now,
	}
}

// WithClock replaces the time source used for created_at
func (r *SQLCandidateRepository) WithClock(now func() time.Time) *SQLCandidateRepository {
	r.now = now
	return r
}

const selectProfile = `
	SELECT
		c.candidate_id, c.user_id, c.resume_url, c.created_at,
		u.first_name, u.last_name, u.email, u.phone,
		(SELECT COUNT(*) FROM applications a WHERE a.candidate_id = c.candidate_id) AS application_count
	FROM candidates c
	JOIN users u ON u.user_id = c.user_id
`

const newestFirst = ` ORDER BY c.created_at DESC, c.candidate_id DESC`

// Create creates a new candidate
func (r *SQLCandidateRepository) Create(ctx context.Context, params candidate.CreateParams) (kernel.CandidateID, error) {
	query := r.db.Rebind(`
		INSERT INTO candidates (user_id, resume_url, created_at)
		VALUES (?, ?, ?)
		RETURNING candidate_id
	`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		int64(params.UserID),
		nullableURL(params.ResumeURL),
		dbx.Timestamp(r.now()),
	).Scan(&id)
	if err != nil {
		return 0, storeCodes.Translate("create", err)
	}

	return kernel.NewCandidateID(id), nil
}

// Update replaces the resume URL
func (r *SQLCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, params candidate.UpdateParams) (bool, error) {
	query := r.db.Rebind(`UPDATE candidates SET resume_url = ? WHERE candidate_id = ?`)

	result, err := r.db.ExecContext(ctx, query, nullableURL(params.ResumeURL), int64(id))
	return matched(result, err, "update")
}

// GetByID retrieves a candidate by ID
func (r *SQLCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Profile, error) {
	query := r.db.Rebind(selectProfile + ` WHERE c.candidate_id = ?`)

	var profile candidate.Profile
	if err := r.db.GetContext(ctx, &profile, query, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeCodes.Translate("get_by_id", err)
	}

	return &profile, nil
}

// ListAll retrieves all candidates, newest first
func (r *SQLCandidateRepository) ListAll(ctx context.Context) ([]candidate.Profile, error) {
	return r.list(ctx, "list_all", selectProfile+newestFirst)
}

// SearchByName matches keywords as a case-insensitive substring of the first
// or last name. Wildcards in keywords match literally.
func (r *SQLCandidateRepository) SearchByName(ctx context.Context, keywords string) ([]candidate.Profile, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(keywords))) + "%"
	return r.list(ctx, "search_by_name",
		selectProfile+` WHERE LOWER(u.first_name) LIKE ? ESCAPE '\' OR LOWER(u.last_name) LIKE ? ESCAPE '\'`+newestFirst,
		pattern, pattern,
	)
}

// Statistics counts the candidate's applications by status. Interviews and
// offers are counted in sub-selects so neither multiplies the other.
func (r *SQLCandidateRepository) Statistics(ctx context.Context, id kernel.CandidateID) (*candidate.Statistics, error) {
	query := r.db.Rebind(`
		SELECT
			COUNT(*) AS total_applications,
			COALESCE(SUM(CASE WHEN current_status = 'applied' THEN 1 ELSE 0 END), 0) AS applied_count,
			COALESCE(SUM(CASE WHEN current_status = 'screened' THEN 1 ELSE 0 END), 0) AS screened_count,
			COALESCE(SUM(CASE WHEN current_status = 'interview' THEN 1 ELSE 0 END), 0) AS interview_count,
			COALESCE(SUM(CASE WHEN current_status = 'offer' THEN 1 ELSE 0 END), 0) AS offer_count,
			COALESCE(SUM(CASE WHEN current_status = 'rejected' THEN 1 ELSE 0 END), 0) AS rejected_count,
			(
				SELECT COUNT(*)
				FROM interviews i
				JOIN applications ia ON ia.application_id = i.application_id
				WHERE ia.candidate_id = ?
			) AS total_interviews,
			(
				SELECT COUNT(*)
				FROM offers o
				JOIN applications oa ON oa.application_id = o.application_id
				WHERE oa.candidate_id = ?
			) AS total_offers
		FROM applications
		WHERE candidate_id = ?
	`)

	var stats candidate.Statistics
	if err := r.db.GetContext(ctx, &stats, query, int64(id), int64(id), int64(id)); err != nil {
		return nil, storeCodes.Translate("statistics", err)
	}
	stats.CandidateID = id
	stats.SuccessRate = candidate.SuccessRate(stats.Offer, stats.TotalApplications)

	return &stats, nil
}

// Delete deletes a candidate by ID
func (r *SQLCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) (bool, error) {
	query := r.db.Rebind(`DELETE FROM candidates WHERE candidate_id = ?`)

	result, err := r.db.ExecContext(ctx, query, int64(id))
	return matched(result, err, "delete")
}

// ============================================================================
// Helper Functions
// ============================================================================

func (r *SQLCandidateRepository) list(ctx context.Context, operation, query string, args ...any) ([]candidate.Profile, error) {
	profiles := []candidate.Profile{}
	if err := r.db.SelectContext(ctx, &profiles, r.db.Rebind(query), args...); err != nil {
		return nil, storeCodes.Translate(operation, err)
	}
	return profiles, nil
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

func nullableURL(u *kernel.ResumeURL) any {
	if u == nil {
		return nil
	}
	return string(*u)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
