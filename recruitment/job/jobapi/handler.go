package jobapi

import (
	"fmt"

	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/job"
	"github.com/Abraxas-365/hirely/recruitment/job/jobsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	id, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(job.CreatedResponse{ID: id})
}

// GetJobByID retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return err
	}

	details, err := h.service.RequireJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// ListJobs retrieves jobs, newest first. ?status=open restricts to open jobs
// and ?company_id=N to one company. Other known statuses are not filterable.
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	var (
		jobs []job.Details
		err  error
	)

	switch {
	case c.Query("company_id") != "":
		companyID, perr := kernel.ParseCompanyID(c.Query("company_id"))
		if perr != nil {
			return perr
		}
		jobs, err = h.service.ListCompanyJobs(c.Context(), companyID)
	case c.Query("status") != "":
		status, perr := job.ParseStatus(c.Query("status"))
		if perr != nil {
			return perr
		}
		if status != job.StatusOpen {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unsupported filter status=%s: only status=open is supported", status))
		}
		jobs, err = h.service.ListOpenJobs(c.Context())
	default:
		jobs, err = h.service.ListJobs(c.Context())
	}
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// UpdateJob replaces the editable fields of a job
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return err
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}
	if !ok {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateJobStatus changes only the status
// PATCH /api/jobs/:id/status
func (h *Handlers) UpdateJobStatus(c *fiber.Ctx) error {
	jobID, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return err
	}

	var req job.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.UpdateJobStatus(c.Context(), jobID, req.Status)
	if err != nil {
		return err
	}
	if !ok {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteJob deletes a job
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return err
	}

	ok, err := h.service.DeleteJob(c.Context(), jobID)
	if err != nil {
		return err
	}
	if !ok {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/jobs", authMiddleware.Authenticate())

	api.Get("/",
		authMiddleware.RequireScope(auth.ScopeJobsRead),
		handlers.ListJobs,
	)

	api.Get("/:id",
		authMiddleware.RequireScope(auth.ScopeJobsRead),
		handlers.GetJobByID,
	)

	api.Post("/",
		authMiddleware.RequireScope(auth.ScopeJobsWrite),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware.RequireScope(auth.ScopeJobsWrite),
		handlers.UpdateJob,
	)

	api.Patch("/:id/status",
		authMiddleware.RequireScope(auth.ScopeJobsWrite),
		handlers.UpdateJobStatus,
	)

	api.Delete("/:id",
		authMiddleware.RequireScope(auth.ScopeJobsDelete),
		handlers.DeleteJob,
	)
}
