package candidate

import (
	"net/http"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeInvalidReference    = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeConflict, http.StatusConflict, "User does not exist, or the candidate is still referenced")
	CodeConstraintViolation = ErrRegistry.Register("CONSTRAINT_VIOLATION", errx.TypeConflict, http.StatusConflict, "User is already a candidate")
	CodeStoreFailure        = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Candidate store operation failed")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}
