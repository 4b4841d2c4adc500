package dbx

import (
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

// StoreCodes are the codes an entity registers for failed statements
type StoreCodes struct {
	Registry            *errx.Registry
	InvalidReference    errx.Code
	ConstraintViolation errx.Code
	StoreFailure        errx.Code
}

// Translate turns a driver error from a single statement into the entity's
// registered error. Foreign key failures become InvalidReference, other
// constraint failures ConstraintViolation and everything else StoreFailure.
func (s StoreCodes) Translate(operation string, err error) *errx.Error {
	v := Classify(err)
	var e *errx.Error
	switch {
	case v == ViolationForeignKey:
		e = s.Registry.NewWithCause(s.InvalidReference, err)
	case v.IsConstraint():
		e = s.Registry.NewWithCause(s.ConstraintViolation, err).WithDetail("violation", v.String())
	default:
		e = s.Registry.NewWithCause(s.StoreFailure, err)
	}
	return e.WithDetail("operation", operation)
}

// Timestamp normalizes t to what both supported stores round trip exactly
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
