package reportapi

import (
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidatesrv"
	"github.com/Abraxas-365/hirely/recruitment/job/jobsrv"
	"github.com/Abraxas-365/hirely/recruitment/offer/offersrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers serves the aggregate statistics reports
type Handlers struct {
	candidates *candidatesrv.CandidateService
	jobs       *jobsrv.JobService
	offers     *offersrv.OfferService
}

// NewHandlers creates a new report handlers instance
func NewHandlers(candidates *candidatesrv.CandidateService, jobs *jobsrv.JobService, offers *offersrv.OfferService) *Handlers {
	return &Handlers{
		candidates: candidates,
		jobs:       jobs,
		offers:     offers,
	}
}

// CandidateStatistics reports a candidate's applications by status
// GET /api/reports/candidates/:id
func (h *Handlers) CandidateStatistics(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return err
	}

	stats, err := h.candidates.CandidateStatistics(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// CompanyJobStatistics reports a company's jobs by status
// GET /api/reports/companies/:id/jobs
func (h *Handlers) CompanyJobStatistics(c *fiber.Ctx) error {
	companyID, err := kernel.ParseCompanyID(c.Params("id"))
	if err != nil {
		return err
	}

	stats, err := h.jobs.CompanyStatistics(c.Context(), companyID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// CompanyOfferStatistics reports a company's offers by status and average salary
// GET /api/reports/companies/:id/offers
func (h *Handlers) CompanyOfferStatistics(c *fiber.Ctx) error {
	companyID, err := kernel.ParseCompanyID(c.Params("id"))
	if err != nil {
		return err
	}

	stats, err := h.offers.CompanyStatistics(c.Context(), companyID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// RegisterRoutes registers all report routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/reports", authMiddleware.Authenticate(), authMiddleware.RequireScope(auth.ScopeReportsRead))

	api.Get("/candidates/:id", handlers.CandidateStatistics)
	api.Get("/companies/:id/jobs", handlers.CompanyJobStatistics)
	api.Get("/companies/:id/offers", handlers.CompanyOfferStatistics)
}
