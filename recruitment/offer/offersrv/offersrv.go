package offersrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirely/internal/metrics"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/Abraxas-365/hirely/pkg/validatex"
	"github.com/Abraxas-365/hirely/recruitment/offer"
)

const entity = "offer"

// OfferService provides business operations for offers
type OfferService struct {
	offerRepo offer.Repository
}

// NewOfferService creates a new instance of the offer service
func NewOfferService(offerRepo offer.Repository) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
	}
}

// CreateOffer extends an offer on an application. An empty status means pending.
func (s *OfferService) CreateOffer(ctx context.Context, req offer.CreateOfferRequest) (kernel.OfferID, error) {
	if err := validatex.Struct(req); err != nil {
		return 0, err
	}
	if err := offer.CheckSalary(req.Salary); err != nil {
		return 0, err
	}
	status := offer.StatusPending
	if req.Status != "" {
		parsed, err := offer.ParseStatus(req.Status)
		if err != nil {
			return 0, err
		}
		status = parsed
	}

	start := time.Now()
	id, err := s.offerRepo.Create(ctx, offer.CreateParams{
		ApplicationID: req.ApplicationID,
		Salary:        req.Salary,
		Status:        status,
	})
	metrics.ObserveStoreOp(entity, "create", start, err == nil, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":         entity,
			"operation":      "create",
			"application_id": req.ApplicationID,
			"error":          err,
		}).Error("failed to create offer")
		return 0, err
	}

	logx.WithFields(logx.Fields{"entity": entity, "offer_id": id, "salary": req.Salary.StringFixed(2)}).Info("offer created")
	return id, nil
}

// UpdateOffer replaces salary and status
func (s *OfferService) UpdateOffer(ctx context.Context, id kernel.OfferID, req offer.UpdateOfferRequest) (bool, error) {
	if err := validatex.Struct(req); err != nil {
		return false, err
	}
	if err := offer.CheckSalary(req.Salary); err != nil {
		return false, err
	}
	status, err := offer.ParseStatus(req.Status)
	if err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.offerRepo.Update(ctx, id, offer.UpdateParams{Salary: req.Salary, Status: status})
	return s.observeWrite("update", id, start, ok, err)
}

// UpdateOfferStatus records the candidate's response to an offer
func (s *OfferService) UpdateOfferStatus(ctx context.Context, id kernel.OfferID, rawStatus string) (bool, error) {
	status, err := offer.ParseStatus(rawStatus)
	if err != nil {
		return false, err
	}

	start := time.Now()
	ok, err := s.offerRepo.UpdateStatus(ctx, id, status)
	return s.observeWrite("update_status", id, start, ok, err)
}

// GetOffer retrieves an offer. A missing offer is (nil, nil).
func (s *OfferService) GetOffer(ctx context.Context, id kernel.OfferID) (*offer.Details, error) {
	start := time.Now()
	details, err := s.offerRepo.GetByID(ctx, id)
	metrics.ObserveStoreOp(entity, "get_by_id", start, details != nil, err)
	if err != nil {
		s.logFailure("get_by_id", id, err)
		return nil, err
	}
	return details, nil
}

// RequireOffer retrieves an offer and reports absence as OFFER.NOT_FOUND
func (s *OfferService) RequireOffer(ctx context.Context, id kernel.OfferID) (*offer.Details, error) {
	details, err := s.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, offer.ErrOfferNotFound().WithDetail("offer_id", id.String())
	}
	return details, nil
}

// ListCandidateOffers retrieves the offers made to a candidate
func (s *OfferService) ListCandidateOffers(ctx context.Context, candidateID kernel.CandidateID) ([]offer.CandidateOffer, error) {
	return observeList("list_by_candidate", func() ([]offer.CandidateOffer, error) {
		return s.offerRepo.ListByCandidate(ctx, candidateID)
	})
}

// ListPendingOffers retrieves offers awaiting a response
func (s *OfferService) ListPendingOffers(ctx context.Context) ([]offer.Details, error) {
	return observeList("list_pending", func() ([]offer.Details, error) {
		return s.offerRepo.ListPending(ctx)
	})
}

// CompanyStatistics summarizes the offers made across a company's jobs
func (s *OfferService) CompanyStatistics(ctx context.Context, companyID kernel.CompanyID) (*offer.Statistics, error) {
	start := time.Now()
	stats, err := s.offerRepo.Statistics(ctx, companyID)
	metrics.ObserveStoreOp(entity, "statistics", start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{
			"entity":     entity,
			"operation":  "statistics",
			"company_id": companyID,
			"error":      err,
		}).Error("failed to compute offer statistics")
		return nil, err
	}
	return stats, nil
}

// DeleteOffer removes an offer
func (s *OfferService) DeleteOffer(ctx context.Context, id kernel.OfferID) (bool, error) {
	start := time.Now()
	ok, err := s.offerRepo.Delete(ctx, id)
	return s.observeWrite("delete", id, start, ok, err)
}

// ============================================================================
// Helper Functions
// ============================================================================

func (s *OfferService) observeWrite(operation string, id kernel.OfferID, start time.Time, ok bool, err error) (bool, error) {
	metrics.ObserveStoreOp(entity, operation, start, ok, err)
	if err != nil {
		s.logFailure(operation, id, err)
		return false, err
	}
	if !ok {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "offer_id": id}).Warn("no offer matched")
	}
	return ok, nil
}

func observeList[T any](operation string, list func() ([]T, error)) ([]T, error) {
	start := time.Now()
	items, err := list()
	metrics.ObserveStoreOp(entity, operation, start, true, err)
	if err != nil {
		logx.WithFields(logx.Fields{"entity": entity, "operation": operation, "error": err}).Error("failed to list offers")
		return nil, err
	}
	return items, nil
}

func (s *OfferService) logFailure(operation string, id kernel.OfferID, err error) {
	logx.WithFields(logx.Fields{
		"entity":    entity,
		"operation": operation,
		"offer_id":  id,
		"error":     err,
	}).Errorf("offer %s failed", operation)
}
