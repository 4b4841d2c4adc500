package interview

import (
	"context"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Repository is the entity access contract for interviews
type Repository interface {
	// Schedule inserts a pending interview and returns its id, or 0 with an error
	Schedule(ctx context.Context, params ScheduleParams) (kernel.InterviewID, error)

	// UpdateResult records the outcome of an interview
	UpdateResult(ctx context.Context, id kernel.InterviewID, result Result) (bool, error)

	// Cancel marks an interview cancelled
	Cancel(ctx context.Context, id kernel.InterviewID) (bool, error)

	// GetByID retrieves an interview with its interviewer's name
	GetByID(ctx context.Context, id kernel.InterviewID) (*WithInterviewer, error)

	// ListByApplication retrieves an application's interviews, latest date first
	ListByApplication(ctx context.Context, applicationID kernel.ApplicationID) ([]WithInterviewer, error)

	// ListUpcoming retrieves pending interviews dated now or later, soonest first
	ListUpcoming(ctx context.Context) ([]Upcoming, error)

	// Delete removes an interview
	Delete(ctx context.Context, id kernel.InterviewID) (bool, error)
}
