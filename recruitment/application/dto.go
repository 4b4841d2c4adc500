package application

import "github.com/Abraxas-365/hirely/pkg/kernel"

// CreateApplicationRequest - DTO for applying a candidate to a job
type CreateApplicationRequest struct {
	JobID       kernel.JobID       `json:"job_id" validate:"gt=0"`
	CandidateID kernel.CandidateID `json:"candidate_id" validate:"gt=0"`
	// Status defaults to applied when empty
	Status string `json:"status,omitempty"`
}

// UpdateStatusRequest - DTO for moving an application to another status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreatedResponse - DTO returned after a create
type CreatedResponse struct {
	ID kernel.ApplicationID `json:"application_id"`
}
