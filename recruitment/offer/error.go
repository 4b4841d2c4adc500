package offer

import (
	"net/http"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("OFFER")

// Error codes
var (
	CodeOfferNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Offer not found")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown offer status")
	CodeInvalidSalary       = ErrRegistry.Register("INVALID_SALARY", errx.TypeValidation, http.StatusBadRequest, "Salary must be a non-negative amount with at most two decimals below 10000000000")
	CodeInvalidReference    = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeConflict, http.StatusConflict, "Application does not exist")
	CodeConstraintViolation = ErrRegistry.Register("CONSTRAINT_VIOLATION", errx.TypeConflict, http.StatusConflict, "Offer violates a store constraint")
	CodeStoreFailure        = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Offer store operation failed")
)

// Helper functions
func ErrOfferNotFound() *errx.Error {
	return ErrRegistry.New(CodeOfferNotFound)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidSalary() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalary)
}
