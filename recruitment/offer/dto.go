package offer

import (
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/shopspring/decimal"
)

// CreateOfferRequest - DTO for extending an offer. Status defaults to pending.
type CreateOfferRequest struct {
	ApplicationID kernel.ApplicationID `json:"application_id" validate:"gt=0"`
	Salary        decimal.Decimal      `json:"salary_offered"`
	Status        string               `json:"status,omitempty"`
}

// UpdateOfferRequest - DTO for replacing salary and status
type UpdateOfferRequest struct {
	Salary decimal.Decimal `json:"salary_offered"`
	Status string          `json:"status" validate:"required"`
}

// UpdateStatusRequest - DTO for recording the candidate's response
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreatedResponse - DTO returned after a create
type CreatedResponse struct {
	ID kernel.OfferID `json:"offer_id"`
}
