package interview

import (
	"time"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// ScheduleInterviewRequest - DTO for scheduling an interview
type ScheduleInterviewRequest struct {
	Title         kernel.InterviewTitle `json:"interview_title" validate:"required,max=200"`
	InterviewerID kernel.UserID         `json:"interviewer_id" validate:"gt=0"`
	ApplicationID kernel.ApplicationID  `json:"application_id" validate:"gt=0"`
	Stage         string                `json:"interview_stage" validate:"required"`
	ScheduledAt   time.Time             `json:"interview_date" validate:"required"`
}

// UpdateResultRequest - DTO for recording an interview outcome
type UpdateResultRequest struct {
	Result string `json:"result" validate:"required"`
}

// CreatedResponse - DTO returned after scheduling
type CreatedResponse struct {
	ID kernel.InterviewID `json:"interview_id"`
}
