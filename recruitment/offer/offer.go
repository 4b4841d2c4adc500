package offer

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/shopspring/decimal"
)

// Status represents the state of an offer
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Statuses lists every valid status in display order
func Statuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusDeclined}
}

func (s Status) String() string {
	return string(s)
}

// IsValid checks membership in the closed status set
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// ParseStatus accepts exactly one of the status names
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.IsValid() {
		return "", ErrInvalidStatus().WithDetail("status", s).WithDetail("allowed", Statuses())
	}
	return st, nil
}

// Salaries are stored as NUMERIC(12,2)
const SalaryScale = 2

// SalaryCeiling is the first amount the salary column cannot hold
var SalaryCeiling = decimal.New(1, 10)

// CheckSalary accepts non-negative amounts below SalaryCeiling with at most
// SalaryScale decimals, so every driver stores exactly what was given.
func CheckSalary(salary decimal.Decimal) error {
	var reason string
	switch {
	case salary.IsNegative():
		reason = "must not be negative"
	case salary.GreaterThanOrEqual(SalaryCeiling):
		reason = "must be below " + SalaryCeiling.String()
	case !salary.Equal(salary.Round(SalaryScale)):
		reason = "must have at most 2 decimals"
	default:
		return nil
	}
	return ErrInvalidSalary().
		WithDetail("salary_offered", salary.String()).
		WithDetail("reason", reason)
}

type Offer struct {
	ID            kernel.OfferID       `db:"offer_id" json:"offer_id"`
	ApplicationID kernel.ApplicationID `db:"application_id" json:"application_id"`
	Salary        decimal.Decimal      `db:"salary_offered" json:"salary_offered"`
	Status        Status               `db:"status" json:"status"`
	OfferDate     time.Time            `db:"offer_date" json:"offer_date"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
}

// IsPending reports whether the candidate has yet to respond
func (o *Offer) IsPending() bool {
	return o.Status == StatusPending
}

// CandidateOffer is an offer listed for a candidate, with the job it is for
type CandidateOffer struct {
	Offer
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidate_id"`
	JobID       kernel.JobID       `db:"job_id" json:"job_id"`
	JobTitle    kernel.JobTitle    `db:"job_title" json:"job_title"`
	CompanyName kernel.CompanyName `db:"company_name" json:"company_name"`
}

// Details is an offer with the job it is for and the candidate it goes to
type Details struct {
	CandidateOffer
	CandidateFirstName kernel.FirstName `db:"candidate_first_name" json:"candidate_first_name"`
	CandidateLastName  kernel.LastName  `db:"candidate_last_name" json:"candidate_last_name"`
	CandidateEmail     kernel.Email     `db:"candidate_email" json:"candidate_email"`
}

// CandidateName returns the candidate's display name
func (d *Details) CandidateName() string {
	return kernel.FullName(d.CandidateFirstName, d.CandidateLastName)
}

// Statistics summarizes the offers made across one company's jobs.
// AverageSalary is invalid when the company has made no offers.
type Statistics struct {
	CompanyID     kernel.CompanyID    `db:"-" json:"company_id"`
	Total         int64               `db:"total_offers" json:"total_offers"`
	Pending       int64               `db:"pending_offers" json:"pending_offers"`
	Accepted      int64               `db:"accepted_offers" json:"accepted_offers"`
	Declined      int64               `db:"declined_offers" json:"declined_offers"`
	AverageSalary decimal.NullDecimal `db:"average_salary" json:"average_salary"`
}

// CreateParams are the fields stored by Create
type CreateParams struct {
	ApplicationID kernel.ApplicationID
	Salary        decimal.Decimal
	Status        Status
}

// UpdateParams replace the salary and status of an offer
type UpdateParams struct {
	Salary decimal.Decimal
	Status Status
}
