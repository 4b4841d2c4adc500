package offer

import (
	"context"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Repository is the entity access contract for offers
type Repository interface {
	// Create inserts an offer and returns its id, or 0 with an error
	Create(ctx context.Context, params CreateParams) (kernel.OfferID, error)

	// Update replaces salary and status and touches updated_at
	Update(ctx context.Context, id kernel.OfferID, params UpdateParams) (bool, error)

	// UpdateStatus sets the status and touches updated_at
	UpdateStatus(ctx context.Context, id kernel.OfferID, status Status) (bool, error)

	// GetByID retrieves an offer with its job and candidate
	GetByID(ctx context.Context, id kernel.OfferID) (*Details, error)

	// ListByCandidate retrieves a candidate's offers, most recent first
	ListByCandidate(ctx context.Context, candidateID kernel.CandidateID) ([]CandidateOffer, error)

	// ListPending retrieves offers awaiting a response, most recent first
	ListPending(ctx context.Context) ([]Details, error)

	// Statistics counts a company's offers by status and averages their salary
	Statistics(ctx context.Context, companyID kernel.CompanyID) (*Statistics, error)

	// Delete removes an offer
	Delete(ctx context.Context, id kernel.OfferID) (bool, error)
}
