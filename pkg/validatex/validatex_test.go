package validatex

import (
	"testing"

	"github.com/Abraxas-365/hirely/pkg/errx"
)

type request struct {
	Title     string  `json:"title" validate:"required,max=10"`
	CompanyID int64   `json:"company_id" validate:"gt=0"`
	Resume    *string `json:"resume_url,omitempty" validate:"omitempty,url"`
	Status    string  `json:"status" validate:"omitempty,oneof=open closed"`
}

func TestStructValid(t *testing.T) {
	url := "https://example.com/cv.pdf"
	if err := Struct(request{Title: "Engineer", CompanyID: 1, Resume: &url, Status: "open"}); err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if err := Struct(request{Title: "Engineer", CompanyID: 1}); err != nil {
		t.Fatalf("optional fields should be accepted: %v", err)
	}
}

func TestStructReportsFields(t *testing.T) {
	bad := "not a url"
	err := Struct(request{CompanyID: 0, Resume: &bad, Status: "gone"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var e *errx.Error
	if !errx.IsType(err, errx.TypeValidation) {
		t.Fatalf("type = %v", err)
	}
	e = err.(*errx.Error)
	for _, field := range []string{"title", "company_id", "resume_url", "status"} {
		if _, ok := e.Details[field]; !ok {
			t.Fatalf("missing detail for %s: %v", field, e.Details)
		}
	}
	if e.Details["title"] != "is required" {
		t.Fatalf("title detail = %v", e.Details["title"])
	}
}
