package applicationapi

import (
	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/application"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateApplication creates a new application
// POST /api/applications
func (h *Handlers) CreateApplication(c *fiber.Ctx) error {
	var req application.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	id, err := h.service.CreateApplication(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(application.CreatedResponse{ID: id})
}

// GetApplicationByID retrieves an application by ID
// GET /api/applications/:id
func (h *Handlers) GetApplicationByID(c *fiber.Ctx) error {
	applicationID, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return err
	}

	app, err := h.service.RequireApplication(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// ListApplications lists applications filtered by exactly one of ?job_id,
// ?candidate_id or ?status
// GET /api/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	switch {
	case c.Query("job_id") != "":
		jobID, err := kernel.ParseJobID(c.Query("job_id"))
		if err != nil {
			return err
		}
		apps, err := h.service.ListJobApplications(c.Context(), jobID)
		if err != nil {
			return err
		}
		return c.JSON(apps)

	case c.Query("candidate_id") != "":
		candidateID, err := kernel.ParseCandidateID(c.Query("candidate_id"))
		if err != nil {
			return err
		}
		apps, err := h.service.ListCandidateApplications(c.Context(), candidateID)
		if err != nil {
			return err
		}
		return c.JSON(apps)

	case c.Query("status") != "":
		apps, err := h.service.ListApplicationsByStatus(c.Context(), c.Query("status"))
		if err != nil {
			return err
		}
		return c.JSON(apps)
	}

	return fiber.NewError(fiber.StatusBadRequest, "one of job_id, candidate_id or status is required")
}

// UpdateApplicationStatus moves an application to another status
// PATCH /api/applications/:id/status
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return err
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.UpdateApplicationStatus(c.Context(), applicationID, req.Status)
	if err != nil {
		return err
	}
	if !ok {
		return application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteApplication deletes an application
// DELETE /api/applications/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	applicationID, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return err
	}

	ok, err := h.service.DeleteApplication(c.Context(), applicationID)
	if err != nil {
		return err
	}
	if !ok {
		return application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/applications", authMiddleware.Authenticate())

	api.Get("/",
		authMiddleware.RequireScope(auth.ScopeApplicationsRead),
		handlers.ListApplications,
	)

	api.Get("/:id",
		authMiddleware.RequireScope(auth.ScopeApplicationsRead),
		handlers.GetApplicationByID,
	)

	api.Post("/",
		authMiddleware.RequireScope(auth.ScopeApplicationsWrite),
		handlers.CreateApplication,
	)

	api.Patch("/:id/status",
		authMiddleware.RequireScope(auth.ScopeApplicationsWrite),
		handlers.UpdateApplicationStatus,
	)

	api.Delete("/:id",
		authMiddleware.RequireScope(auth.ScopeApplicationsDelete),
		handlers.DeleteApplication,
	)
}
