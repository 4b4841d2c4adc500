package job

import "github.com/Abraxas-365/hirely/pkg/kernel"

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	CompanyID    kernel.CompanyID      `json:"company_id" validate:"gt=0"`
	DepartmentID kernel.DepartmentID   `json:"department_id" validate:"gt=0"`
	Title        kernel.JobTitle       `json:"title" validate:"required,max=200"`
	Description  kernel.JobDescription `json:"description"`
	Status       string                `json:"status" validate:"required"`
}

// UpdateJobRequest - DTO for replacing the editable fields of a job
type UpdateJobRequest struct {
	Title       kernel.JobTitle       `json:"title" validate:"required,max=200"`
	Description kernel.JobDescription `json:"description"`
	Status      string                `json:"status" validate:"required"`
}

// UpdateStatusRequest - DTO for changing only the status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreatedResponse - DTO returned after a create
type CreatedResponse struct {
	ID kernel.JobID `json:"job_id"`
}
