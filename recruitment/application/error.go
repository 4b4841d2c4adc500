package application

import (
	"net/http"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown application status")
	CodeInvalidReference    = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeConflict, http.StatusConflict, "Job or candidate does not exist, or the application is still referenced")
	CodeConstraintViolation = ErrRegistry.Register("CONSTRAINT_VIOLATION", errx.TypeConflict, http.StatusConflict, "Application violates a store constraint")
	CodeStoreFailure        = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Application store operation failed")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}
