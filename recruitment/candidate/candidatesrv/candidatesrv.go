package candidatesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirely/internal/metrics"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/Abraxas-365/hirely/pkg/validatex"
	"github.com/Abraxas-365/hirely/recruitment/candidate"
)

const entity = "candidate"

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
	}
}

// CreateCandidate registers an existing user as a candidate
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (kernel.CandidateID, error) {
	if err := validatex.Struct(req); err != nil {
		return 0, err
	}

	start := time.Now()
	id, err := s.candidateRepo.Create(ctx, candidate.CreateParams{
		UserID:    req.UserID,
		ResumeURL: candidate.ResumeURL(req.ResumeURL),
	})
	metrics.ObserveStoreOp(entity, "create", start, err == nil, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":    entity,
			"operation": "create",
			"user_id":   req.UserID,
			"error":     err,
		}).Error("failed to create candidate")
		return 0, err
	}

	logx.WithFields(logx.Fields{"entity": entity, "candidate_id": id}).Info("candidate created")
	return id, nil
}

// UpdateCandidate replaces the resume URL
func (s *CandidateService) UpdateCandidate(ctx context.Context, id kernel.CandidateID, req candidate.UpdateCandidateRequest) (bool, error) {
	if err := validatex.Struct(req); err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.candidateRepo.Update(ctx, id, candidate.UpdateParams{
		ResumeURL: candidate.ResumeURL(req.ResumeURL),
	})
	return s.observeWrite("update", id, start, ok, err)
}

// GetCandidate retrieves a candidate profile. A missing candidate is (nil, nil).
func (s *CandidateService) GetCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.Profile, error) {
	start := time.Now()
	profile, err := s.candidateRepo.GetByID(ctx, id)
	metrics.ObserveStoreOp(entity, "get_by_id", start, profile != nil, err)
	if err != nil {
		s.logFailure("get_by_id", id, err)
		return nil, err
	}
	return profile, nil
}

// RequireCandidate retrieves a candidate and reports absence as CANDIDATE.NOT_FOUND
func (s *CandidateService) RequireCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.Profile, error) {
	profile, err := s.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}
	return profile, nil
}

// ListCandidates retrieves all candidates, newest first
func (s *CandidateService) ListCandidates(ctx context.Context) ([]candidate.Profile, error) {
	return s.observeList("list_all", func() ([]candidate.Profile, error) {
		return s.candidateRepo.ListAll(ctx)
	})
}

// SearchCandidates finds candidates whose first or last name contains keywords
func (s *CandidateService) SearchCandidates(ctx context.Context, keywords string) ([]candidate.Profile, error) {
	return s.observeList("search_by_name", func() ([]candidate.Profile, error) {
		return s.candidateRepo.SearchByName(ctx, keywords)
	})
}

// CandidateStatistics summarizes a candidate's applications. Unknown
// candidates yield all-zero statistics.
func (s *CandidateService) CandidateStatistics(ctx context.Context, id kernel.CandidateID) (*candidate.Statistics, error) {
	start := time.Now()
	stats, err := s.candidateRepo.Statistics(ctx, id)
	metrics.ObserveStoreOp(entity, "statistics", start, true, err)
	if err != nil {
		s.logFailure("statistics", id, err)
		return nil, err
	}
	return stats, nil
}

// DeleteCandidate removes a candidate
func (s *CandidateService) DeleteCandidate(ctx context.Context, id kernel.CandidateID) (bool, error) {
	start := time.Now()
	ok, err := s.candidateRepo.Delete(ctx, id)
	return s.observeWrite("delete", id, start, ok, err)
}

// ============================================================================
// Helper Functions
// ============================================================================

func (s *CandidateService) observeWrite(operation string, id kernel.CandidateID, start time.Time, ok bool, err error) (bool, error) {
	metrics.ObserveStoreOp(entity, operation, start, ok, err)
	if err != nil {
		s.logFailure(operation, id, err)
		return false, err
	}
	if !ok {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "candidate_id": id}).Warn("no candidate matched")
	}
	return ok, nil
}

func (s *CandidateService) observeList(operation string, list func() ([]candidate.Profile, error)) ([]candidate.Profile, error) {
	start := time.Now()
	profiles, err := list()
	metrics.ObserveStoreOp(entity, operation, start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "error": err}).Error("failed to list candidates")
		return nil, err
	}
	return profiles, nil
}

func (s *CandidateService) logFailure(operation string, id kernel.CandidateID, err error) {
	logx.WithFields(logx.Fields{
		"entity":       entity,
		"operation":    operation,
		"candidate_id": id,
		"error":        err,
	}).Errorf("candidate %s failed", operation)
}
