package offerinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/offer"
	"github.com/jmoiron/sqlx"
)

var storeCodes = dbx.StoreCodes{
	Registry:            offer.ErrRegistry,
	InvalidReference:    offer.CodeInvalidReference,
	ConstraintViolation: offer.CodeConstraintViolation,
	StoreFailure:        offer.CodeStoreFailure,
}

// SQLOfferRepository implements offer.Repository on PostgreSQL or SQLite
type SQLOfferRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLOfferRepository creates a new offer repository
func NewSQLOfferRepository(db *sqlx.DB) *SQLOfferRepository {
	return &SQLOfferRepository{
		db:  db,
		now: time.Now,
	}
}

// WithClock replaces the time source used for offer_date and updated_at
func (r *SQLOfferRepository) WithClock(now func() time.Time) *SQLOfferRepository {
	r.now = now
	return r
}

const selectCandidateOffer = `
	SELECT
		o.offer_id, o.application_id, o.salary_offered, o.status, o.offer_date, o.updated_at,
		a.candidate_id, a.job_id,
		j.title AS job_title,
		co.company_name
	FROM offers o
	JOIN applications a ON a.application_id = o.application_id
	JOIN jobs j ON j.job_id = a.job_id
	JOIN companies co ON co.company_id = j.company_id
`

const selectDetails = `
	SELECT
		o.offer_id, o.application_id, o.salary_offered, o.status, o.offer_date, o.updated_at,
		a.candidate_id, a.job_id,
		j.title AS job_title,
		co.company_name,
		u.first_name AS candidate_first_name,
		u.last_name AS candidate_last_name,
		u.email AS candidate_email
	FROM offers o
	JOIN applications a ON a.application_id = o.application_id
	JOIN jobs j ON j.job_id = a.job_id
	JOIN companies co ON co.company_id = j.company_id
	JOIN candidates c ON c.candidate_id = a.candidate_id
	JOIN users u ON u.user_id = c.user_id
`

const mostRecentFirst = ` ORDER BY o.offer_date DESC, o.offer_id DESC`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new offer. offer_date and updated_at start equal.
func (r *SQLOfferRepository) Create(ctx context.Context, params offer.CreateParams) (kernel.OfferID, error) {
	query := r.db.Rebind(`
		INSERT INTO offers (application_id, salary_offered, status, offer_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING offer_id
	`)

	now := dbx.Timestamp(r.now())
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		int64(params.ApplicationID),
		params.Salary,
		string(params.Status),
		now,
		now,
	).Scan(&id)
	if err != nil {
		return 0, storeCodes.Translate("create", err)
	}

	return kernel.NewOfferID(id), nil
}

// Update replaces salary and status
func (r *SQLOfferRepository) Update(ctx context.Context, id kernel.OfferID, params offer.UpdateParams) (bool, error) {
	query := r.db.Rebind(`UPDATE offers SET salary_offered = ?, status = ?, updated_at = ? WHERE offer_id = ?`)

	result, err := r.db.ExecContext(ctx, query, params.Salary, string(params.Status), dbx.Timestamp(r.now()), int64(id))
	return matched(result, err, "update")
}

// UpdateStatus sets the status
func (r *SQLOfferRepository) UpdateStatus(ctx context.Context, id kernel.OfferID, status offer.Status) (bool, error) {
	query := r.db.Rebind(`UPDATE offers SET status = ?, updated_at = ? WHERE offer_id = ?`)

	result, err := r.db.ExecContext(ctx, query, string(status), dbx.Timestamp(r.now()), int64(id))
	return matched(result, err, "update_status")
}

// GetByID retrieves an offer by ID
func (r *SQLOfferRepository) GetByID(ctx context.Context, id kernel.OfferID) (*offer.Details, error) {
	query := r.db.Rebind(selectDetails + ` WHERE o.offer_id = ?`)

	var details offer.Details
	if err := r.db.GetContext(ctx, &details, query, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeCodes.Translate("get_by_id", err)
	}

	return &details, nil
}

// ListByCandidate retrieves a candidate's offers
func (r *SQLOfferRepository) ListByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]offer.CandidateOffer, error) {
	query := r.db.Rebind(selectCandidateOffer + ` WHERE a.candidate_id = ?` + mostRecentFirst)

	offers := []offer.CandidateOffer{}
	if err := r.db.SelectContext(ctx, &offers, query, int64(candidateID)); err != nil {
		return nil, storeCodes.Translate("list_by_candidate", err)
	}
	return offers, nil
}

// ListPending retrieves offers awaiting a response
func (r *SQLOfferRepository) ListPending(ctx context.Context) ([]offer.Details, error) {
	query := r.db.Rebind(selectDetails + ` WHERE o.status = ?` + mostRecentFirst)

	offers := []offer.Details{}
	if err := r.db.SelectContext(ctx, &offers, query, string(offer.StatusPending)); err != nil {
		return nil, storeCodes.Translate("list_pending", err)
	}
	return offers, nil
}

// Statistics counts a company's offers by status. Each offer belongs to one
// application and one job, so the joins cannot repeat an offer.
func (r *SQLOfferRepository) Statistics(ctx context.Context, companyID kernel.CompanyID) (*offer.Statistics, error) {
	query := r.db.Rebind(`
		SELECT
			COUNT(*) AS total_offers,
			COALESCE(SUM(CASE WHEN o.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_offers,
			COALESCE(SUM(CASE WHEN o.status = 'accepted' THEN 1 ELSE 0 END), 0) AS accepted_offers,
			COALESCE(SUM(CASE WHEN o.status = 'declined' THEN 1 ELSE 0 END), 0) AS declined_offers,
			AVG(o.salary_offered) AS average_salary
		FROM offers o
		JOIN applications a ON a.application_id = o.application_id
		JOIN jobs j ON j.job_id = a.job_id
		WHERE j.company_id = ?
	`)

	var stats offer.Statistics
	if err := r.db.GetContext(ctx, &stats, query, int64(companyID)); err != nil {
		return nil, storeCodes.Translate("statistics", err)
	}
	stats.CompanyID = companyID
	if stats.AverageSalary.Valid {
		stats.AverageSalary.Decimal = stats.AverageSalary.Decimal.Round(2)
	}

	return &stats, nil
}

// Delete deletes an offer by ID
func (r *SQLOfferRepository) Delete(ctx context.Context, id kernel.OfferID) (bool, error) {
	query := r.db.Rebind(`DELETE FROM offers WHERE offer_id = ?`)

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
