package jobsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirely/internal/metrics"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/Abraxas-365/hirely/pkg/validatex"
	"github.com/Abraxas-365/hirely/recruitment/job"
)

const entity = "job"

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// CreateJob validates the request and stores a new job. The returned id is
// 0 whenever err is not nil.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (kernel.JobID, error) {
	if err := validatex.Struct(req); err != nil {
		return 0, err
	}
	status, err := job.ParseStatus(req.Status)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	id, err := s.jobRepo.Create(ctx, job.CreateParams{
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       status,
	})
	metrics.ObserveStoreOp(entity, "create", start, err == nil, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":     entity,
			"operation":  "create",
			"company_id": req.CompanyID,
			"error":      err,
		}).Error("failed to create job")
		return 0, err
	}

	logx.WithFields(logx.Fields{"entity": entity, "job_id": id}).Info("job created")
	return id, nil
}

// UpdateJob replaces title, description and status
func (s *JobService) UpdateJob(ctx context.Context, id kernel.JobID, req job.UpdateJobRequest) (bool, error) {
	if err := validatex.Struct(req); err != nil {
		return false, err
	}
	status, err := job.ParseStatus(req.Status)
	if err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.jobRepo.Update(ctx, id, job.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	})
	return s.observeWrite("update", id, start, ok, err)
}

// UpdateJobStatus sets the status of a job
func (s *JobService) UpdateJobStatus(ctx context.Context, id kernel.JobID, rawStatus string) (bool, error) {
	status, err := job.ParseStatus(rawStatus)
	if err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.jobRepo.UpdateStatus(ctx, id, status)
	return s.observeWrite("update_status", id, start, ok, err)
}

// GetJob retrieves a job. A missing job is (nil, nil).
func (s *JobService) GetJob(ctx context.Context, id kernel.JobID) (*job.Details, error) {
	start := time.Now()
	details, err := s.jobRepo.GetByID(ctx, id)
	metrics.ObserveStoreOp(entity, "get_by_id", start, details != nil, err)
	if err != nil {
		s.logFailure("get_by_id", id, err)
		return nil, err
	}
	return details, nil
}

// RequireJob retrieves a job and reports absence as JOB.NOT_FOUND
func (s *JobService) RequireJob(ctx context.Context, id kernel.JobID) (*job.Details, error) {
	details, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return details, nil
}

// ListJobs retrieves all jobs, newest first
func (s *JobService) ListJobs(ctx context.Context) ([]job.Details, error) {
	return s.observeList("list_all", func() ([]job.Details, error) {
		return s.jobRepo.ListAll(ctx)
	})
}

// ListOpenJobs retrieves open jobs, newest first
func (s *JobService) ListOpenJobs(ctx context.Context) ([]job.Details, error) {
	return s.observeList("list_open", func() ([]job.Details, error) {
		return s.jobRepo.ListOpen(ctx)
	})
}

// ListCompanyJobs retrieves the jobs of a company, newest first
func (s *JobService) ListCompanyJobs(ctx context.Context, companyID kernel.CompanyID) ([]job.Details, error) {
	return s.observeList("list_by_company", func() ([]job.Details, error) {
		return s.jobRepo.ListByCompany(ctx, companyID)
	})
}

// CompanyStatistics summarizes a company's jobs
func (s *JobService) CompanyStatistics(ctx context.Context, companyID kernel.CompanyID) (*job.Statistics, error) {
	start := time.Now()
	stats, err := s.jobRepo.Statistics(ctx, companyID)
	metrics.ObserveStoreOp(entity, "statistics", start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":     entity,
			"operation":  "statistics",
			"company_id": companyID,
			"error":      err,
		}).Error("failed to compute job statistics")
		return nil, err
	}
	return stats, nil
}

// DeleteJob removes a job
func (s *JobService) DeleteJob(ctx context.Context, id kernel.JobID) (bool, error) {
	start := time.Now()
	ok, err := s.jobRepo.Delete(ctx, id)
	return s.observeWrite("delete", id, start, ok, err)
}

// ============================================================================
// Helper Functions
// ============================================================================

func (s *JobService) observeWrite(operation string, id kernel.JobID, start time.Time, ok bool, err error) (bool, error) {
	metrics.ObserveStoreOp(entity, operation, start, ok, err)
	if err != nil {
		s.logFailure(operation, id, err)
		return false, err
	}
	if !ok {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "job_id": id}).Warn("no job matched")
	}
	return ok, nil
}

func (s *JobService) observeList(operation string, list func() ([]job.Details, error)) ([]job.Details, error) {
	start := time.Now()
	jobs, err := list()
	metrics.ObserveStoreOp(entity, operation, start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "error": err}).Error("failed to list jobs")
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) logFailure(operation string, id kernel.JobID, err error) {
	logx.WithFields(logx.Fields{
		"entity":    entity,
		"operation": operation,
		"job_id":    id,
		"error":     err,
	}).Errorf("job %s failed", operation)
}
