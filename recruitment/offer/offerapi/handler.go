package offerapi

import (
	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/offer"
	"github.com/Abraxas-365/hirely/recruitment/offer/offersrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for offer operations
type Handlers struct {
	service *offersrv.OfferService
}

// NewHandlers creates a new offer handlers instance
func NewHandlers(service *offersrv.OfferService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateOffer extends an offer
// POST /api/offers
func (h *Handlers) CreateOffer(c *fiber.Ctx) error {
	var req offer.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	id, err := h.service.CreateOffer(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(offer.CreatedResponse{ID: id})
}

// GetOfferByID retrieves an offer by ID
// GET /api/offers/:id
func (h *Handlers) GetOfferByID(c *fiber.Ctx) error {
	offerID, err := kernel.ParseOfferID(c.Params("id"))
	if err != nil {
		return err
	}

	details, err := h.service.RequireOffer(c.Context(), offerID)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// ListCandidateOffers lists the offers made to ?candidate_id
// GET /api/offers
func (h *Handlers) ListCandidateOffers(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Query("candidate_id"))
	if err != nil {
		return err
	}

	offers, err := h.service.ListCandidateOffers(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(offers)
}

// ListPendingOffers lists offers awaiting a response
// GET /api/offers/pending
func (h *Handlers) ListPendingOffers(c *fiber.Ctx) error {
	offers, err := h.service.ListPendingOffers(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(offers)
}

// UpdateOffer replaces salary and status
// PUT /api/offers/:id
func (h *Handlers) UpdateOffer(c *fiber.Ctx) error {
	offerID, err := kernel.ParseOfferID(c.Params("id"))
	if err != nil {
		return err
	}

	var req offer.UpdateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.UpdateOffer(c.Context(), offerID, req)
	if err != nil {
		return err
	}
	if !ok {
		return offer.ErrOfferNotFound().WithDetail("offer_id", offerID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateOfferStatus records the candidate's response
// PATCH /api/offers/:id/status
func (h *Handlers) UpdateOfferStatus(c *fiber.Ctx) error {
	offerID, err := kernel.ParseOfferID(c.Params("id"))
	if err != nil {
		return err
	}

	var req offer.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.UpdateOfferStatus(c.Context(), offerID, req.Status)
	if err != nil {
		return err
	}
	if !ok {
		return offer.ErrOfferNotFound().WithDetail("offer_id", offerID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteOffer deletes an offer
// DELETE /api/offers/:id
func (h *Handlers) DeleteOffer(c *fiber.Ctx) error {
	offerID, err := kernel.ParseOfferID(c.Params("id"))
	if err != nil {
		return err
	}

	ok, err := h.service.DeleteOffer(c.Context(), offerID)
	if err != nil {
		return err
	}
	if !ok {
		return offer.ErrOfferNotFound().WithDetail("offer_id", offerID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all offer routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/offers", authMiddleware.Authenticate())

	api.Get("/",
		authMiddleware.RequireScope(auth.ScopeOffersRead),
		handlers.ListCandidateOffers,
	)

	api.Get("/pending",
		authMiddleware.RequireScope(auth.ScopeOffersRead),
		handlers.ListPendingOffers,
	)

	api.Get("/:id",
		authMiddleware.RequireScope(auth.ScopeOffersRead),
		handlers.GetOfferByID,
	)

	api.Post("/",
		authMiddleware.RequireScope(auth.ScopeOffersWrite),
		handlers.CreateOffer,
	)

	api.Put("/:id",
		authMiddleware.RequireScope(auth.ScopeOffersWrite),
		handlers.UpdateOffer,
	)

	api.Patch("/:id/status",
		authMiddleware.RequireScope(auth.ScopeOffersWrite),
		handlers.UpdateOfferStatus,
	)

	api.Delete("/:id",
		authMiddleware.RequireScope(auth.ScopeOffersDelete),
		handlers.DeleteOffer,
	)
}
