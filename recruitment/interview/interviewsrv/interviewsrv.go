package interviewsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirely/internal/metrics"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/Abraxas-365/hirely/pkg/validatex"
	"github.com/Abraxas-365/hirely/recruitment/interview"
)

const entity = "interview"

// InterviewService provides business operations for interviews
type InterviewService struct {
	interviewRepo interview.Repository
}

// NewInterviewService creates a new instance of the interview service
func NewInterviewService(interviewRepo interview.Repository) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
	}
}

// ScheduleInterview stores a new pending interview
func (s *InterviewService) ScheduleInterview(ctx context.Context, req interview.ScheduleInterviewRequest) (kernel.InterviewID, error) {
	if err := validatex.Struct(req); err != nil {
		return 0, err
	}
	stage, err := interview.ParseStage(req.Stage)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	id, err := s.interviewRepo.Schedule(ctx, interview.ScheduleParams{
		Title:         req.Title,
		InterviewerID: req.InterviewerID,
		ApplicationID: req.ApplicationID,
		Stage:         stage,
		ScheduledAt:   req.ScheduledAt,
	})
	metrics.ObserveStoreOp(entity, "schedule", start, err == nil, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":         entity,
			"operation":      "schedule",
			"application_id": req.ApplicationID,
			"interviewer_id": req.InterviewerID,
			"error":          err,
		}).Error("failed to schedule interview")
		return 0, err
	}

	logx.WithFields(logx.Fields{
		"entity":       entity,
		"interview_id": id,
		"scheduled_at": req.ScheduledAt,
	}).Info("interview scheduled")
	return id, nil
}

// RecordResult sets the outcome of an interview
func (s *InterviewService) RecordResult(ctx context.Context, id kernel.InterviewID, rawResult string) (bool, error) {
	result, err := interview.ParseResult(rawResult)
	if err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.interviewRepo.UpdateResult(ctx, id, result)
	return s.observeWrite("update_result", id, start, ok, err)
}

// CancelInterview marks an interview cancelled
func (s *InterviewService) CancelInterview(ctx context.Context, id kernel.InterviewID) (bool, error) {
	start := time.Now()
	ok, err := s.interviewRepo.Cancel(ctx, id)
	return s.observeWrite("cancel", id, start, ok, err)
}

// GetInterview retrieves an interview. A missing interview is (nil, nil).
func (s *InterviewService) GetInterview(ctx context.Context, id kernel.InterviewID) (*interview.WithInterviewer, error) {
	start := time.Now()
	iv, err := s.interviewRepo.GetByID(ctx, id)
	metrics.ObserveStoreOp(entity, "get_by_id", start, iv != nil, err)
	if err != nil {
		s.logFailure("get_by_id", id, err)
		return nil, err
	}
	return iv, nil
}

// RequireInterview retrieves an interview and reports absence as INTERVIEW.NOT_FOUND
func (s *InterviewService) RequireInterview(ctx context.Context, id kernel.InterviewID) (*interview.WithInterviewer, error) {
	iv, err := s.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv == nil {
		return nil, interview.ErrInterviewNotFound().WithDetail("interview_id", id.String())
	}
	return iv, nil
}

// ListApplicationInterviews retrieves the interviews of an application
func (s *InterviewService) ListApplicationInterviews(ctx context.Context, applicationID kernel.ApplicationID) ([]interview.WithInterviewer, error) {
	return observeList("list_by_application", func() ([]interview.WithInterviewer, error) {
		return s.interviewRepo.ListByApplication(ctx, applicationID)
	})
}

// ListUpcomingInterviews retrieves pending interviews that have not happened yet
func (s *InterviewService) ListUpcomingInterviews(ctx context.Context) ([]interview.Upcoming, error) {
	return observeList("list_upcoming", func() ([]interview.Upcoming, error) {
		return s.interviewRepo.ListUpcoming(ctx)
	})
}

// DeleteInterview removes an interview
func (s *InterviewService) DeleteInterview(ctx context.Context, id kernel.InterviewID) (bool, error) {
	start := time.Now()
	ok, err := s.interviewRepo.Delete(ctx, id)
	return s.observeWrite("delete", id, start, ok, err)
}

// ============================================================================
// Helper Functions
// ============================================================================

func (s *InterviewService) observeWrite(operation string, id kernel.InterviewID, start time.Time, ok bool, err error) (bool, error) {
	metrics.ObserveStoreOp(entity, operation, start, ok, err)
	if err != nil {
		s.logFailure(operation, id, err)
		return false, err
	}
	if !ok {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "interview_id": id}).Warn("no interview matched")
	}
	return ok, nil
}

func observeList[T any](operation string, list func() ([]T, error)) ([]T, error) {
	start := time.Now()
	items, err := list()
	metrics.ObserveStoreOp(entity, operation, start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "error": err}).Error("failed to list interviews")
		return nil, err
	}
	return items, nil
}

func (s *InterviewService) logFailure(operation string, id kernel.InterviewID, err error) {
	logx.WithFields(logx.Fields{
		"entity":       entity,
		"operation":    operation,
		"interview_id": id,
		"error":        err,
	}).Errorf("interview %s failed", operation)
}
