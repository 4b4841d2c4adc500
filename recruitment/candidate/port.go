package candidate

import (
	"context"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Repository is the entity access contract for candidates
type Repository interface {
	// Create inserts a candidate for an existing user and returns its id, or 0
	// with an error
	Create(ctx context.Context, params CreateParams) (kernel.CandidateID, error)

	// Update replaces the resume URL
	Update(ctx context.Context, id kernel.CandidateID, params UpdateParams) (bool, error)

	// GetByID retrieves a candidate with the user's person data
	GetByID(ctx context.Context, id kernel.CandidateID) (*Profile, error)

	// ListAll retrieves every candidate, newest first
	ListAll(ctx context.Context) ([]Profile, error)

	// SearchByName matches a case-insensitive substring of the first or last name
	SearchByName(ctx context.Context, keywords string) ([]Profile, error)

	// Statistics counts the candidate's applications by status, interviews and offers
	Statistics(ctx context.Context, id kernel.CandidateID) (*Statistics, error)

	// Delete removes a candidate
	Delete(ctx context.Context, id kernel.CandidateID) (bool, error)
}
