package job

import (
	"context"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Repository is the entity access contract for jobs. Absent rows are
// reported as nil results, and no-match on update/delete as false.
type Repository interface {
	// Create inserts a job and returns its id, or 0 with an error
	Create(ctx context.Context, params CreateParams) (kernel.JobID, error)

	// Update replaces title, description and status
	Update(ctx context.Context, id kernel.JobID, params UpdateParams) (bool, error)

	// UpdateStatus sets the status only
	UpdateStatus(ctx context.Context, id kernel.JobID, status Status) (bool, error)

	// GetByID retrieves a job with company and department names
	GetByID(ctx context.Context, id kernel.JobID) (*Details, error)

	// ListAll retrieves every job, newest first
	ListAll(ctx context.Context) ([]Details, error)

	// ListOpen retrieves open jobs, newest first
	ListOpen(ctx context.Context) ([]Details, error)

	// ListByCompany retrieves the jobs of one company, newest first
	ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]Details, error)

	// Statistics counts a company's jobs by status and their applications
	Statistics(ctx context.Context, companyID kernel.CompanyID) (*Statistics, error)

	// Delete removes a job
	Delete(ctx context.Context, id kernel.JobID) (bool, error)
}
