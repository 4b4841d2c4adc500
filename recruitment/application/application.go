package application

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Status represents the status of an application. Transitions are not
// restricted: any status may follow any other.
type Status string

const (
	StatusApplied   Status = "applied"   // Initial submission
	StatusScreened  Status = "screened"  // Passed initial review
	StatusInterview Status = "interview" // In interview process
	StatusOffer     Status = "offer"     // Offer extended
	StatusRejected  Status = "rejected"  // Rejected
)

// Statuses lists every valid status in pipeline order
func Statuses() []Status {
	return []Status{StatusApplied, StatusScreened, StatusInterview, StatusOffer, StatusRejected}
}

func (s Status) String() string {
	return string(s)
}

// IsValid checks membership in the closed status set
func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusScreened, StatusInterview, StatusOffer, StatusRejected:
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

type Application struct {
	ID            kernel.ApplicationID `db:"application_id" json:"application_id"`
	JobID         kernel.JobID         `db:"job_id" json:"job_id"`
	CandidateID   kernel.CandidateID   `db:"candidate_id" json:"candidate_id"`
	CurrentStatus Status               `db:"current_status" json:"current_status"`
	AppliedDate   time.Time            `db:"applied_date" json:"applied_date"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the application is still in the pipeline
func (a *Application) IsActive() bool {
	return a.CurrentStatus != StatusRejected && a.CurrentStatus != StatusOffer
}

// WithCandidate is an application listed for a job, with the applicant's details
type WithCandidate struct {
	Application
	ResumeURL *kernel.ResumeURL `db:"resume_url" json:"resume_url,omitempty"`
	FirstName kernel.FirstName  `db:"first_name" json:"first_name"`
	LastName  kernel.LastName   `db:"last_name" json:"last_name"`
	Email     kernel.Email      `db:"email" json:"email"`
}

// FullName returns the applicant's display name
func (a *WithCandidate) FullName() string {
	return kernel.FullName(a.FirstName, a.LastName)
}

// WithJob is an application listed for a candidate, with the job's details
type WithJob struct {
	Application
	JobTitle       kernel.JobTitle       `db:"title" json:"job_title"`
	JobDescription kernel.JobDescription `db:"description" json:"job_description"`
	CompanyName    kernel.CompanyName    `db:"company_name" json:"company_name"`
}

// CreateParams are the fields stored by Create
type CreateParams struct {
	JobID       kernel.JobID
	CandidateID kernel.CandidateID
	Status      Status
}
