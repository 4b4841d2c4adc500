package candidateapi

import (
	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/candidate"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidatesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidate registers a user as a candidate
// POST /api/candidates
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	id, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(candidate.CreatedResponse{ID: id})
}

// GetCandidateByID retrieves a candidate profile
// GET /api/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return err
	}

	profile, err := h.service.RequireCandidate(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// ListCandidates retrieves candidates, newest first. ?q= searches by name.
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	var (
		profiles []candidate.Profile
		err      error
	)

	if q := c.Query("q"); q != "" {
		profiles, err = h.service.SearchCandidates(c.Context(), q)
	} else {
		profiles, err = h.service.ListCandidates(c.Context())
	}
	if err != nil {
		return err
	}

	return c.JSON(profiles)
}

// UpdateCandidate replaces the resume URL
// PUT /api/candidates/:id
func (h *Handlers) UpdateCandidate(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return err
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.UpdateCandidate(c.Context(), candidateID, req)
	if err != nil {
		return err
	}
	if !ok {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCandidate deletes a candidate
// DELETE /api/candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return err
	}

	ok, err := h.service.DeleteCandidate(c.Context(), candidateID)
	if err != nil {
		return err
	}
	if !ok {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/candidates", authMiddleware.Authenticate())

	api.Get("/",
		authMiddleware.RequireScope(auth.ScopeCandidatesRead),
		handlers.ListCandidates,
	)

	api.Get("/:id",
		authMiddleware.RequireScope(auth.ScopeCandidatesRead),
		handlers.GetCandidateByID,
	)

	api.Post("/",
		authMiddleware.RequireScope(auth.ScopeCandidatesWrite),
		handlers.CreateCandidate,
	)

	api.Put("/:id",
		authMiddleware.RequireScope(auth.ScopeCandidatesWrite),
		handlers.UpdateCandidate,
	)

	api.Delete("/:id",
		authMiddleware.RequireScope(auth.ScopeCandidatesDelete),
		handlers.DeleteCandidate,
	)
}
