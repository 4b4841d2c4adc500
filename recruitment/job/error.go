package job

import (
	"net/http"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown job status")
	CodeInvalidReference    = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeConflict, http.StatusConflict, "Company or department does not exist, or the job is still referenced")
	CodeConstraintViolation = ErrRegistry.Register("CONSTRAINT_VIOLATION", errx.TypeConflict, http.StatusConflict, "Job violates a store constraint")
	CodeStoreFailure        = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Job store operation failed")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}
