package applicationsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirely/internal/metrics"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/Abraxas-365/hirely/pkg/validatex"
	"github.com/Abraxas-365/hirely/recruitment/application"
)

const entity = "application"

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(applicationRepo application.Repository) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
	}
}

// CreateApplication applies a candidate to a job. An empty status means applied.
func (s *ApplicationService) CreateApplication(ctx context.Context, req application.CreateApplicationRequest) (kernel.ApplicationID, error) {
	if err := validatex.Struct(req); err != nil {
		return 0, err
	}
	status := application.StatusApplied
	if req.Status != "" {
		parsed, err := application.ParseStatus(req.Status)
		if err != nil {
			return 0, err
		}
		status = parsed
	}

	start := time.Now()
	id, err := s.applicationRepo.Create(ctx, application.CreateParams{
		JobID:       req.JobID,
		CandidateID: req.CandidateID,
		Status:      status,
	})
	metrics.ObserveStoreOp(entity, "create", start, err == nil, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":       entity,
			"operation":    "create",
			"job_id":       req.JobID,
			"candidate_id": req.CandidateID,
			"error":        err,
		}).Error("failed to create application")
		return 0, err
	}

	logx.WithFields(logx.Fields{"entity": entity, "application_id": id, "status": status}).Info("application created")
	return id, nil
}

// UpdateApplicationStatus moves an application to another status
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id kernel.ApplicationID, rawStatus string) (bool, error) {
	status, err := application.ParseStatus(rawStatus)
	if err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	return s.observeWrite("update_status", id, start, ok, err)
}

// GetApplication retrieves an application. A missing application is (nil, nil).
func (s *ApplicationService) GetApplication(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	start := time.Now()
	app, err := s.applicationRepo.GetByID(ctx, id)
	metrics.ObserveStoreOp(entity, "get_by_id", start, app != nil, err)
	if err != nil {
		s.logFailure("get_by_id", id, err)
		return nil, err
	}
	return app, nil
}

// RequireApplication retrieves an application and reports absence as APPLICATION.NOT_FOUND
func (s *ApplicationService) RequireApplication(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}
	return app, nil
}

// ListJobApplications retrieves the applications for a job
func (s *ApplicationService) ListJobApplications(ctx context.Context, jobID kernel.JobID) ([]application.WithCandidate, error) {
	return observeList("list_by_job", func() ([]application.WithCandidate, error) {
		return s.applicationRepo.ListByJob(ctx, jobID)
	})
}

// ListCandidateApplications retrieves the applications of a candidate
func (s *ApplicationService) ListCandidateApplications(ctx context.Context, candidateID kernel.CandidateID) ([]application.WithJob, error) {
	return observeList("list_by_candidate", func() ([]application.WithJob, error) {
		return s.applicationRepo.ListByCandidate(ctx, candidateID)
	})
}

// ListApplicationsByStatus retrieves applications in one status
func (s *ApplicationService) ListApplicationsByStatus(ctx context.Context, rawStatus string) ([]application.Application, error) {
	status, err := application.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return observeList("list_by_status", func() ([]application.Application, error) {
		return s.applicationRepo.ListByStatus(ctx, status)
	})
}

// DeleteApplication removes an application
func (s *ApplicationService) DeleteApplication(ctx context.Context, id kernel.ApplicationID) (bool, error) {
	start := time.Now()
	ok, err := s.applicationRepo.Delete(ctx, id)
	return s.observeWrite("delete", id, start, ok, err)
}

// ============================================================================
// Helper Functions
// ============================================================================

func (s *ApplicationService) observeWrite(operation string, id kernel.ApplicationID, start time.Time, ok bool, err error) (bool, error) {
	metrics.ObserveStoreOp(entity, operation, start, ok, err)
	if err != nil {
		s.logFailure(operation, id, err)
		return false, err
	}
	if !ok {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "application_id": id}).Warn("no application matched")
	}
	return ok, nil
}

func observeList[T any](operation string, list func() ([]T, error)) ([]T, error) {
	start := time.Now()
	items, err := list()
	metrics.ObserveStoreOp(entity, operation, start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "error": err}).Error("failed to list applications")
		return nil, err
	}
	return items, nil
}

func (s *ApplicationService) logFailure(operation string, id kernel.ApplicationID, err error) {
	logx.WithFields(logx.Fields{
		"entity":         entity,
		"operation":      operation,
		"application_id": id,
		"error":          err,
	}).Errorf("application %s failed", operation)
}
