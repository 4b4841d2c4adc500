package httpx

import (
	"errors"
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderCorrelationID = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
)

// CorrelationID makes sure every request carries a correlation id
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderCorrelationID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(correlationIDKey, id)
		c.Set(HeaderCorrelationID, id)

		return c.Next()
	}
}

// GetCorrelationID returns the correlation id of the request, if any
func GetCorrelationID(c *fiber.Ctx) string {
	if id, ok := c.Locals(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger writes one structured record per request
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		entry := logx.WithFields(logx.Fields{
			"method":         c.Method(),
			"path":           c.Path(),
			"status":         status,
			"latency_ms":     time.Since(start).Milliseconds(),
			"correlation_id": GetCorrelationID(c),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
		return err
	}
}

// ErrorHandler converts errors returned by handlers to JSON responses
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	var e *errx.Error
	if errors.As(err, &e) {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.WithFields(logx.Fields{
				"code":           e.Code,
				"correlation_id": GetCorrelationID(c),
			}).Errorf("internal error: %v", err)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}

// BadRequest wraps a body parsing failure
func BadRequest(err error) *errx.Error {
	return errx.New("malformed request body", errx.TypeValidation).WithDetail("parse_error", err.Error())
}

func statusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return errx.HTTPStatusOf(err)
}
