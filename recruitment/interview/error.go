package interview

import (
	"net/http"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERVIEW")

// Error codes
var (
	CodeInterviewNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interview not found")
	CodeInvalidStage        = ErrRegistry.Register("INVALID_STAGE", errx.TypeValidation, http.StatusBadRequest, "Unknown interview stage")
	CodeInvalidResult       = ErrRegistry.Register("INVALID_RESULT", errx.TypeValidation, http.StatusBadRequest, "Unknown interview result")
	CodeInvalidReference    = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeConflict, http.StatusConflict, "Interviewer or application does not exist")
	CodeConstraintViolation = ErrRegistry.Register("CONSTRAINT_VIOLATION", errx.TypeConflict, http.StatusConflict, "Interview violates a store constraint")
	CodeStoreFailure        = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Interview store operation failed")
)

// Helper functions
func ErrInterviewNotFound() *errx.Error {
	return ErrRegistry.New(CodeInterviewNotFound)
}

func ErrInvalidStage() *errx.Error {
	return ErrRegistry.New(CodeInvalidStage)
}

func ErrInvalidResult() *errx.Error {
	return ErrRegistry.New(CodeInvalidResult)
}
