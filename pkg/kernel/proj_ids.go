package kernel

import "strconv"

type JobID int64

func NewJobID(id int64) JobID  { return JobID(id) }
func (r JobID) String() string { return strconv.FormatInt(int64(r), 10) }
func (r JobID) IsEmpty() bool  { return r <= 0 }

type CandidateID int64

func NewCandidateID(id int64) CandidateID { return CandidateID(id) }
func (r CandidateID) String() string      { return strconv.FormatInt(int64(r), 10) }
func (r CandidateID) IsEmpty() bool       { return r <= 0 }

type ApplicationID int64

func NewApplicationID(id int64) ApplicationID { return ApplicationID(id) }
func (r ApplicationID) String() string        { return strconv.FormatInt(int64(r), 10) }
func (r ApplicationID) IsEmpty() bool         { return r <= 0 }

type InterviewID int64

func NewInterviewID(id int64) InterviewID { return InterviewID(id) }
func (r InterviewID) String() string      { return strconv.FormatInt(int64(r), 10) }
func (r InterviewID) IsEmpty() bool       { return r <= 0 }

type OfferID int64

func NewOfferID(id int64) OfferID { return OfferID(id) }
func (r OfferID) String() string  { return strconv.FormatInt(int64(r), 10) }
func (r OfferID) IsEmpty() bool   { return r <= 0 }

func ParseJobID(s string) (JobID, error) {
	id, err := parseID("job", s)
	return JobID(id), err
}

func ParseCandidateID(s string) (CandidateID, error) {
	id, err := parseID("candidate", s)
	return CandidateID(id), err
}

func ParseApplicationID(s string) (ApplicationID, error) {
	id, err := parseID("application", s)
	return ApplicationID(id), err
}

func ParseInterviewID(s string) (InterviewID, error) {
	id, err := parseID("interview", s)
	return InterviewID(id), err
}

func ParseOfferID(s string) (OfferID, error) {
	id, err := parseID("offer", s)
	return OfferID(id), err
}
