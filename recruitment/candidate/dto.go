package candidate

import "github.com/Abraxas-365/hirely/pkg/kernel"

// CreateCandidateRequest - DTO for registering a user as a candidate
type CreateCandidateRequest struct {
	UserID    kernel.UserID `json:"user_id" validate:"gt=0"`
	ResumeURL *string       `json:"resume_url,omitempty" validate:"omitempty,url"`
}

// UpdateCandidateRequest - DTO for replacing the resume URL. A nil URL clears it.
type UpdateCandidateRequest struct {
	ResumeURL *string `json:"resume_url" validate:"omitempty,url"`
}

// CreatedResponse - DTO returned after a create
type CreatedResponse struct {
	ID kernel.CandidateID `json:"candidate_id"`
}

// ResumeURL converts an optional request field
func ResumeURL(s *string) *kernel.ResumeURL {
	if s == nil {
		return nil
	}
	u := kernel.ResumeURL(*s)
	return &u
}
