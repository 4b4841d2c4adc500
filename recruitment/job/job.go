package job

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Status represents the status of a job posting. Any status may follow any
// other.
type Status string

const (
	StatusOpen   Status = "open"    // Accepting applications
	StatusClosed Status = "closed"  // No longer accepting applications
	StatusOnHold Status = "on_hold" // Paused
)

// Statuses lists every valid status in display order
func Statuses() []Status {
	return []Status{StatusOpen, StatusClosed, StatusOnHold}
}

func (s Status) String() string {
	return string(s)
}

// IsValid checks membership in the closed status set
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusOnHold:
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

type Job struct {
	ID           kernel.JobID          `db:"job_id" json:"job_id"`
	CompanyID    kernel.CompanyID      `db:"company_id" json:"company_id"`
	DepartmentID kernel.DepartmentID   `db:"department_id" json:"department_id"`
	Title        kernel.JobTitle       `db:"title" json:"title"`
	Description  kernel.JobDescription `db:"description" json:"description"`
	Status       Status                `db:"status" json:"status"`
	CreatedAt    time.Time             `db:"created_at" json:"created_at"`
}

// Details is a job with the display fields of its company and department
type Details struct {
	Job
	CompanyName      kernel.CompanyName    `db:"company_name" json:"company_name"`
	DepartmentName   kernel.DepartmentName `db:"department_name" json:"department_name"`
	ApplicationCount int64                 `db:"application_count" json:"application_count"`
}

// IsOpen checks if the job accepts applications
func (j *Job) IsOpen() bool {
	return j.Status == StatusOpen
}

// Statistics summarizes the jobs of one company
type Statistics struct {
	CompanyID         kernel.CompanyID `db:"-" json:"company_id"`
	TotalJobs         int64            `db:"total_jobs" json:"total_jobs"`
	Open              int64            `db:"open_jobs" json:"open_jobs"`
	Closed            int64            `db:"closed_jobs" json:"closed_jobs"`
	OnHold            int64            `db:"on_hold_jobs" json:"on_hold_jobs"`
	TotalApplications int64            `db:"total_applications" json:"total_applications"`
}

// CreateParams are the fields stored by Create
type CreateParams struct {
	CompanyID    kernel.CompanyID
	DepartmentID kernel.DepartmentID
	Title        kernel.JobTitle
	Description  kernel.JobDescription
	Status       Status
}

// UpdateParams replace the editable fields of a job
type UpdateParams struct {
	Title       kernel.JobTitle
	Description kernel.JobDescription
	Status      Status
}
