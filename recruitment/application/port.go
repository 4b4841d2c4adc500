package application

import (
	"context"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Repository is the entity access contract for applications. Absent rows are
// reported as nil results, and no-match on update/delete as false.
type Repository interface {
	// Create inserts an application and returns its id, or 0 with an error
	Create(ctx context.Context, params CreateParams) (kernel.ApplicationID, error)

	// UpdateStatus sets the current status and touches updated_at
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status Status) (bool, error)

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// ListByJob retrieves a job's applications with applicant details, most recent first
	ListByJob(ctx context.Context, jobID kernel.JobID) ([]WithCandidate, error)

	// ListByCandidate retrieves a candidate's applications with job details, most recent first
	ListByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]WithJob, error)

	// ListByStatus retrieves applications in one status, most recent first
	ListByStatus(ctx context.Context, status Status) ([]Application, error)

	// Delete removes an application
	Delete(ctx context.Context, id kernel.ApplicationID) (bool, error)
}
