package interviewapi

import (
	"github.com/Abraxas-365/hirely/internal/httpx"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/interview"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for interview operations
type Handlers struct {
	service *interviewsrv.InterviewService
}

// NewHandlers creates a new interview handlers instance
func NewHandlers(service *interviewsrv.InterviewService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ScheduleInterview schedules a new interview
// POST /api/interviews
func (h *Handlers) ScheduleInterview(c *fiber.Ctx) error {
	var req interview.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	id, err := h.service.ScheduleInterview(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(interview.CreatedResponse{ID: id})
}

// GetInterviewByID retrieves an interview by ID
// GET /api/interviews/:id
func (h *Handlers) GetInterviewByID(c *fiber.Ctx) error {
	interviewID, err := kernel.ParseInterviewID(c.Params("id"))
	if err != nil {
		return err
	}

	iv, err := h.service.RequireInterview(c.Context(), interviewID)
	if err != nil {
		return err
	}

	return c.JSON(iv)
}

// ListApplicationInterviews lists the interviews of ?application_id
// GET /api/interviews
func (h *Handlers) ListApplicationInterviews(c *fiber.Ctx) error {
	applicationID, err := kernel.ParseApplicationID(c.Query("application_id"))
	if err != nil {
		return err
	}

	interviews, err := h.service.ListApplicationInterviews(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(interviews)
}

// ListUpcomingInterviews lists pending interviews that have not happened yet
// GET /api/interviews/upcoming
func (h *Handlers) ListUpcomingInterviews(c *fiber.Ctx) error {
	interviews, err := h.service.ListUpcomingInterviews(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(interviews)
}

// RecordResult records the outcome of an interview
// PATCH /api/interviews/:id/result
func (h *Handlers) RecordResult(c *fiber.Ctx) error {
	interviewID, err := kernel.ParseInterviewID(c.Params("id"))
	if err != nil {
		return err
	}

	var req interview.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(err)
	}

	ok, err := h.service.RecordResult(c.Context(), interviewID, req.Result)
	if err != nil {
		return err
	}
	if !ok {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", interviewID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CancelInterview cancels an interview
// POST /api/interviews/:id/cancel
func (h *Handlers) CancelInterview(c *fiber.Ctx) error {
	interviewID, err := kernel.ParseInterviewID(c.Params("id"))
	if err != nil {
		return err
	}

	ok, err := h.service.CancelInterview(c.Context(), interviewID)
	if err != nil {
		return err
	}
	if !ok {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", interviewID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteInterview deletes an interview
// DELETE /api/interviews/:id
func (h *Handlers) DeleteInterview(c *fiber.Ctx) error {
	interviewID, err := kernel.ParseInterviewID(c.Params("id"))
	if err != nil {
		return err
	}

	ok, err := h.service.DeleteInterview(c.Context(), interviewID)
	if err != nil {
		return err
	}
	if !ok {
		return interview.ErrInterviewNotFound().WithDetail("interview_id", interviewID.String())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all interview routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/interviews", authMiddleware.Authenticate())

	api.Get("/",
		authMiddleware.RequireScope(auth.ScopeInterviewsRead),
		handlers.ListApplicationInterviews,
	)

	api.Get("/upcoming",
		authMiddleware.RequireScope(auth.ScopeInterviewsRead),
		handlers.ListUpcomingInterviews,
	)

	api.Get("/:id",
		authMiddleware.RequireScope(auth.ScopeInterviewsRead),
		handlers.GetInterviewByID,
	)

	api.Post("/",
		authMiddleware.RequireScope(auth.ScopeInterviewsSchedule),
		handlers.ScheduleInterview,
	)

	api.Patch("/:id/result",
		authMiddleware.RequireScope(auth.ScopeInterviewsConduct),
		handlers.RecordResult,
	)

	api.Post("/:id/cancel",
		authMiddleware.RequireScope(auth.ScopeInterviewsConduct),
		handlers.CancelInterview,
	)

	api.Delete("/:id",
		authMiddleware.RequireScope(auth.ScopeInterviewsDelete),
		handlers.DeleteInterview,
	)
}
