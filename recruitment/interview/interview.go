package interview

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirely/pkg/kernel"
)

// Stage is the round an interview belongs to
type Stage string

const (
	StageHR         Stage = "HR"
	StageTechnical  Stage = "Technical"
	StageManagerial Stage = "Managerial"
)

// Stages lists every valid stage in display order
func Stages() []Stage {
	return []Stage{StageHR, StageTechnical, StageManagerial}
}

func (s Stage) String() string {
	return string(s)
}

// IsValid checks membership in the closed stage set
func (s Stage) IsValid() bool {
	switch s {
	case StageHR, StageTechnical, StageManagerial:
		return true
	}
	return false
}

// ParseStage accepts exactly one of the stage names
func ParseStage(s string) (Stage, error) {
	st := Stage(strings.TrimSpace(s))
	if !st.IsValid() {
		return "", ErrInvalidStage().WithDetail("stage", s).WithDetail("allowed", Stages())
	}
	return st, nil
}

// Result is the outcome of an interview. Cancelled interviews are kept
// apart from failed ones.
type Result string

const (
	ResultPass      Result = "pass"
	ResultFail      Result = "fail"
	ResultPending   Result = "pending"
	ResultCancelled Result = "cancelled"
)

// Results lists every valid result in display order
func Results() []Result {
	return []Result{ResultPass, ResultFail, ResultPending, ResultCancelled}
}

func (r Result) String() string {
	return string(r)
}

// IsValid checks membership in the closed result set
func (r Result) IsValid() bool {
	switch r {
	case ResultPass, ResultFail, ResultPending, ResultCancelled:
		return true
	}
	return false
}

// ParseResult accepts exactly one of the result names
func ParseResult(s string) (Result, error) {
	r := Result(strings.TrimSpace(s))
	if !r.IsValid() {
		return "", ErrInvalidResult().WithDetail("result", s).WithDetail("allowed", Results())
	}
	return r, nil
}

type Interview struct {
	ID            kernel.InterviewID    `db:"interview_id" json:"interview_id"`
	Title         kernel.InterviewTitle `db:"interview_title" json:"interview_title"`
	InterviewerID kernel.UserID         `db:"interviewer_id" json:"interviewer_id"`
	ApplicationID kernel.ApplicationID  `db:"application_id" json:"application_id"`
	Stage         Stage                 `db:"interview_stage" json:"interview_stage"`
	ScheduledAt   time.Time             `db:"interview_date" json:"interview_date"`
	Result        Result                `db:"result" json:"result"`
	CreatedAt     time.Time             `db:"created_at" json:"created_at"`
}

// IsPending reports whether the interview still awaits a result
func (i *Interview) IsPending() bool {
	return i.Result == ResultPending
}

// WithInterviewer is an interview with its interviewer's name
type WithInterviewer struct {
	Interview
	InterviewerFirstName kernel.FirstName `db:"interviewer_first_name" json:"interviewer_first_name"`
	InterviewerLastName  kernel.LastName  `db:"interviewer_last_name" json:"interviewer_last_name"`
}

// InterviewerName returns the interviewer's display name
func (i *WithInterviewer) InterviewerName() string {
	return kernel.FullName(i.InterviewerFirstName, i.InterviewerLastName)
}

// Upcoming is a pending interview with who is interviewed and for which job
type Upcoming struct {
	WithInterviewer
	CandidateFirstName kernel.FirstName `db:"candidate_first_name" json:"candidate_first_name"`
	CandidateLastName  kernel.LastName  `db:"candidate_last_name" json:"candidate_last_name"`
	JobTitle           kernel.JobTitle  `db:"job_title" json:"job_title"`
}

// CandidateName returns the candidate's display name
func (u *Upcoming) CandidateName() string {
	return kernel.FullName(u.CandidateFirstName, u.CandidateLastName)
}

// ScheduleParams are the fields stored by Schedule. The result starts pending.
type ScheduleParams struct {
	Title         kernel.InterviewTitle
	InterviewerID kernel.UserID
	ApplicationID kernel.ApplicationID
	Stage         Stage
	ScheduledAt   time.Time
}
