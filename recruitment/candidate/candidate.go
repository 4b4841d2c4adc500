package candidate

import (
	"time"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Candidate links a directory user to the recruitment process. Name, email
// and phone live on the user.
type Candidate struct {
	ID        kernel.CandidateID `db:"candidate_id" json:"candidate_id"`
	UserID    kernel.UserID      `db:"user_id" json:"user_id"`
	ResumeURL *kernel.ResumeURL  `db:"resume_url" json:"resume_url,omitempty"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}

// Profile is a candidate with the person data of its user
type Profile struct {
	Candidate
	FirstName        kernel.FirstName `db:"first_name" json:"first_name"`
	LastName         kernel.LastName  `db:"last_name" json:"last_name"`
	Email            kernel.Email     `db:"email" json:"email"`
	Phone            *kernel.Phone    `db:"phone" json:"phone,omitempty"`
	ApplicationCount int64            `db:"application_count" json:"application_count"`
}

// FullName returns the candidate's display name
func (p *Profile) FullName() string {
	return kernel.FullName(p.FirstName, p.LastName)
}

// HasResume checks if a resume URL is on file
func (c *Candidate) HasResume() bool {
	return c.ResumeURL != nil && *c.ResumeURL != ""
}

// Statistics summarizes one candidate's applications
type Statistics struct {
	CandidateID       kernel.CandidateID `db:"-" json:"candidate_id"`
	TotalApplications int64              `db:"total_applications" json:"total_applications"`
	Applied           int64              `db:"applied_count" json:"applied"`
	Screened          int64              `db:"screened_count" json:"screened"`
	Interview         int64              `db:"interview_count" json:"interview"`
	Offer             int64              `db:"offer_count" json:"offer"`
	Rejected          int64              `db:"rejected_count" json:"rejected"`
	TotalInterviews   int64              `db:"total_interviews" json:"total_interviews"`
	TotalOffers       int64              `db:"total_offers" json:"total_offers"`
	SuccessRate       float64            `db:"-" json:"success_rate"`
}

// SuccessRate is the percentage of applications that reached the offer
// status, 0 when there are none.
func SuccessRate(offers, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(offers) / float64(total) * 100
}

// CreateParams are the fields stored by Create
type CreateParams struct {
	UserID    kernel.UserID
	ResumeURL *kernel.ResumeURL
}

// UpdateParams replace the editable fields of a candidate
type UpdateParams struct {
	ResumeURL *kernel.ResumeURL
}
