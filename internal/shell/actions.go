package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/application"
	"github.com/Abraxas-365/hirely/recruitment/candidate"
	"github.com/Abraxas-365/hirely/recruitment/interview"
	"github.com/Abraxas-365/hirely/recruitment/job"
	"github.com/Abraxas-365/hirely/recruitment/offer"
)

func names[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// ============================================================================
// Applications
// ============================================================================

func (c *Console) applicationActions() []action {
	return []action{
		{"1", "View applications by status", c.viewApplicationsByStatus},
		{"2", "View applications by job", c.viewApplicationsByJob},
		{"3", "View applications by candidate", c.viewApplicationsByCandidate},
		{"4", "Update application status", c.updateApplicationStatus},
		{"5", "Create new application", c.createApplication},
		{"6", "Delete application", c.deleteApplication},
	}
}

func (c *Console) viewApplicationsByStatus(ctx context.Context) error {
	status, err := c.readLine(fmt.Sprintf("Status (%s): ", names(application.Statuses())))
	if err != nil {
		return err
	}
	apps, err := c.svc.Applications.ListApplicationsByStatus(ctx, status)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{a.ID.String(), a.JobID.String(), a.CandidateID.String(), a.CurrentStatus.String(), stamp(a.AppliedDate)})
	}
	c.table("ID\tJOB\tCANDIDATE\tSTATUS\tAPPLIED", rows)
	return nil
}

func (c *Console) viewApplicationsByJob(ctx context.Context) error {
	id, err := c.readID("Enter Job ID: ")
	if err != nil {
		return err
	}
	apps, err := c.svc.Applications.ListJobApplications(ctx, kernel.NewJobID(id))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		resume := "-"
		if a.ResumeURL != nil {
			resume = string(*a.ResumeURL)
		}
		rows = append(rows, []string{a.ID.String(), a.FullName(), string(a.Email), a.CurrentStatus.String(), resume, stamp(a.AppliedDate)})
	}
	c.table("ID\tCANDIDATE\tEMAIL\tSTATUS\tRESUME\tAPPLIED", rows)
	return nil
}

func (c *Console) viewApplicationsByCandidate(ctx context.Context) error {
	id, err := c.readID("Enter Candidate ID: ")
	if err != nil {
		return err
	}
	apps, err := c.svc.Applications.ListCandidateApplications(ctx, kernel.NewCandidateID(id))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{a.ID.String(), string(a.JobTitle), string(a.CompanyName), a.CurrentStatus.String(), stamp(a.AppliedDate)})
	}
	c.table("ID\tJOB\tCOMPANY\tSTATUS\tAPPLIED", rows)
	return nil
}

func (c *Console) updateApplicationStatus(ctx context.Context) error {
	id, err := c.readID("Enter Application ID: ")
	if err != nil {
		return err
	}
	status, err := c.readLine(fmt.Sprintf("New status (%s): ", names(application.Statuses())))
	if err != nil {
		return err
	}
	ok, err := c.svc.Applications.UpdateApplicationStatus(ctx, kernel.NewApplicationID(id), status)
	if err != nil {
		return err
	}
	c.outcome(ok, "Application status updated.", fmt.Sprintf("No application with ID %d.", id))
	return nil
}

func (c *Console) createApplication(ctx context.Context) error {
	jobID, err := c.readID("Enter Job ID: ")
	if err != nil {
		return err
	}
	candidateID, err := c.readID("Enter Candidate ID: ")
	if err != nil {
		return err
	}
	id, err := c.svc.Applications.CreateApplication(ctx, application.CreateApplicationRequest{
		JobID:       kernel.NewJobID(jobID),
		CandidateID: kernel.NewCandidateID(candidateID),
	})
	if err != nil {
		return err
	}
	c.printf("Application created with ID: %d\n", id)
	return nil
}

func (c *Console) deleteApplication(ctx context.Context) error {
	id, err := c.readID("Enter Application ID to delete: ")
	if err != nil {
		return err
	}
	ok, err := c.svc.Applications.DeleteApplication(ctx, kernel.NewApplicationID(id))
	if err != nil {
		return err
	}
	c.outcome(ok, "Application deleted.", fmt.Sprintf("No application with ID %d.", id))
	return nil
}

// ============================================================================
// Candidates
// ============================================================================

func (c *Console) candidateActions() []action {
	return []action{
		{"1", "View all candidates", c.viewCandidates},
		{"2", "Add new candidate", c.addCandidate},
		{"3", "Update candidate resume URL", c.updateCandidate},
		{"4", "Delete candidate", c.deleteCandidate},
		{"5", "Search candidates by name", c.searchCandidates},
	}
}

func (c *Console) printCandidates(profiles []candidate.Profile) {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		resume := "-"
		if p.HasResume() {
			resume = string(*p.ResumeURL)
		}
		rows = append(rows, []string{p.ID.String(), p.FullName(), string(p.Email), resume, fmt.Sprint(p.ApplicationCount)})
	}
	c.table("ID\tNAME\tEMAIL\tRESUME\tAPPLICATIONS", rows)
}

func (c *Console) viewCandidates(ctx context.Context) error {
	profiles, err := c.svc.Candidates.ListCandidates(ctx)
	if err != nil {
		return err
	}
	c.printCandidates(profiles)
	return nil
}

func (c *Console) addCandidate(ctx context.Context) error {
	userID, err := c.readID("Enter User ID (must exist): ")
	if err != nil {
		return err
	}
	resume, err := c.readOptional("Enter resume URL (blank for none): ")
	if err != nil {
		return err
	}
	id, err := c.svc.Candidates.CreateCandidate(ctx, candidate.CreateCandidateRequest{
		UserID:    kernel.NewUserID(userID),
		ResumeURL: resume,
	})
	if err != nil {
		return err
	}
	c.printf("Candidate created with ID: %d\n", id)
	return nil
}

func (c *Console) updateCandidate(ctx context.Context) error {
	id, err := c.readID("Enter Candidate ID: ")
	if err != nil {
		return err
	}
	resume, err := c.readOptional("Enter new resume URL (blank to clear): ")
	if err != nil {
		return err
	}
	ok, err := c.svc.Candidates.UpdateCandidate(ctx, kernel.NewCandidateID(id), candidate.UpdateCandidateRequest{ResumeURL: resume})
	if err != nil {
		return err
	}
	c.outcome(ok, "Candidate resume URL updated.", fmt.Sprintf("No candidate with ID %d.", id))
	return nil
}

func (c *Console) deleteCandidate(ctx context.Context) error {
	id, err := c.readID("Enter Candidate ID to delete: ")
	if err != nil {
		return err
	}
	ok, err := c.svc.Candidates.DeleteCandidate(ctx, kernel.NewCandidateID(id))
	if err != nil {
		return err
	}
	c.outcome(ok, "Candidate deleted.", fmt.Sprintf("No candidate with ID %d.", id))
	return nil
}

func (c *Console) searchCandidates(ctx context.Context) error {
	keywords, err := c.readLine("Enter name keywords to search: ")
	if err != nil {
		return err
	}
	profiles, err := c.svc.Candidates.SearchCandidates(ctx, keywords)
	if err != nil {
		return err
	}
	c.printCandidates(profiles)
	return nil
}

// ============================================================================
// Jobs
// ============================================================================

func (c *Console) jobActions() []action {
	return []action{
		{"1", "View all jobs", c.viewJobs},
		{"2", "View open jobs", c.viewOpenJobs},
		{"3", "Add new job", c.addJob},
		{"4", "Update job information", c.updateJob},
		{"5", "Delete job", c.deleteJob},
		{"6", "View jobs by company", c.viewCompanyJobs},
	}
}

func (c *Console) printJobs(jobs []job.Details) {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{j.ID.String(), string(j.Title), string(j.CompanyName), string(j.DepartmentName), j.Status.String(), fmt.Sprint(j.ApplicationCount)})
	}
	c.table("ID\tTITLE\tCOMPANY\tDEPARTMENT\tSTATUS\tAPPLICATIONS", rows)
}

func (c *Console) viewJobs(ctx context.Context) error {
	jobs, err := c.svc.Jobs.ListJobs(ctx)
	if err != nil {
		return err
	}
	c.printJobs(jobs)
	return nil
}

func (c *Console) viewOpenJobs(ctx context.Context) error {
	jobs, err := c.svc.Jobs.ListOpenJobs(ctx)
	if err != nil {
		return err
	}
	c.printJobs(jobs)
	return nil
}

func (c *Console) viewCompanyJobs(ctx context.Context) error {
	id, err := c.readID("Enter Company ID: ")
	if err != nil {
		return err
	}
	jobs, err := c.svc.Jobs.ListCompanyJobs(ctx, kernel.NewCompanyID(id))
	if err != nil {
		return err
	}
	c.printJobs(jobs)
	return nil
}

func (c *Console) addJob(ctx context.Context) error {
	companyID, err := c.readID("Enter company ID: ")
	if err != nil {
		return err
	}
	departmentID, err := c.readID("Enter department ID: ")
	if err != nil {
		return err
	}
	title, err := c.readLine("Enter job title: ")
	if err != nil {
		return err
	}
	description, err := c.readLine("Enter job description: ")
	if err != nil {
		return err
	}
	status, err := c.readLine(fmt.Sprintf("Status (%s): ", names(job.Statuses())))
	if err != nil {
		return err
	}
	id, err := c.svc.Jobs.CreateJob(ctx, job.CreateJobRequest{
		CompanyID:    kernel.NewCompanyID(companyID),
		DepartmentID: kernel.NewDepartmentID(departmentID),
		Title:        kernel.JobTitle(title),
		Description:  kernel.JobDescription(description),
		Status:       status,
	})
	if err != nil {
		return err
	}
	c.printf("Job created with ID: %d\n", id)
	return nil
}

func (c *Console) updateJob(ctx context.Context) error {
	id, err := c.readID("Enter Job ID: ")
	if err != nil {
		return err
	}
	title, err := c.readLine("Enter new title: ")
	if err != nil {
		return err
	}
	description, err := c.readLine("Enter new description: ")
	if err != nil {
		return err
	}
	status, err := c.readLine(fmt.Sprintf("Status (%s): ", names(job.Statuses())))
	if err != nil {
		return err
	}
	ok, err := c.svc.Jobs.UpdateJob(ctx, kernel.NewJobID(id), job.UpdateJobRequest{
		Title:       kernel.JobTitle(title),
		Description: kernel.JobDescription(description),
		Status:      status,
	})
	if err != nil {
		return err
	}
	c.outcome(ok, "Job updated.", fmt.Sprintf("No job with ID %d.", id))
	return nil
}

func (c *Console) deleteJob(ctx context.Context) error {
	id, err := c.readID("Enter Job ID to delete: ")
	if err != nil {
		return err
	}
	ok, err := c.svc.Jobs.DeleteJob(ctx, kernel.NewJobID(id))
	if err != nil {
		return err
	}
	c.outcome(ok, "Job deleted.", fmt.Sprintf("No job with ID %d.", id))
	return nil
}

// ============================================================================
// Interviews
// ============================================================================

func (c *Console) interviewActions() []action {
	return []action{
		{"1", "View upcoming interviews", c.viewUpcomingInterviews},
		{"2", "Schedule interview", c.scheduleInterview},
		{"3", "Update interview result", c.updateInterviewResult},
		{"4", "Cancel interview", c.cancelInterview},
		{"5", "View interviews by application", c.viewApplicationInterviews},
	}
}

func (c *Console) viewUpcomingInterviews(ctx context.Context) error {
	upcoming, err := c.svc.Interviews.ListUpcomingInterviews(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(upcoming))
	for _, u := range upcoming {
		rows = append(rows, []string{u.ID.String(), stamp(u.ScheduledAt), string(u.Title), u.Stage.String(), u.CandidateName(), string(u.JobTitle), u.InterviewerName()})
	}
	c.table("ID\tDATE\tTITLE\tSTAGE\tCANDIDATE\tJOB\tINTERVIEWER", rows)
	return nil
}

func (c *Console) scheduleInterview(ctx context.Context) error {
	title, err := c.readLine("Enter interview title: ")
	if err != nil {
		return err
	}
	interviewerID, err := c.readID("Enter interviewer ID: ")
	if err != nil {
		return err
	}
	applicationID, err := c.readID("Enter application ID: ")
	if err != nil {
		return err
	}
	stage, err := c.readLine(fmt.Sprintf("Stage (%s): ", names(interview.Stages())))
	if err != nil {
		return err
	}
	at, err := c.readTime(fmt.Sprintf("Date and time, UTC (%s): ", DateLayout))
	if err != nil {
		return err
	}
	id, err := c.svc.Interviews.ScheduleInterview(ctx, interview.ScheduleInterviewRequest{
		Title:         kernel.InterviewTitle(title),
		InterviewerID: kernel.NewUserID(interviewerID),
		ApplicationID: kernel.NewApplicationID(applicationID),
		Stage:         stage,
		ScheduledAt:   at,
	})
	if err != nil {
		return err
	}
	c.printf("Interview scheduled with ID: %d\n", id)
	return nil
}

func (c *Console) updateInterviewResult(ctx context.Context) error {
	id, err := c.readID("Enter Interview ID: ")
	if err != nil {
		return err
	}
	result, err := c.readLine(fmt.Sprintf("Result (%s): ", names(interview.Results())))
	if err != nil {
		return err
	}
	ok, err := c.svc.Interviews.RecordResult(ctx, kernel.NewInterviewID(id), result)
	if err != nil {
		return err
	}
	c.outcome(ok, "Interview result updated.", fmt.Sprintf("No interview with ID %d.", id))
	return nil
}

func (c *Console) cancelInterview(ctx context.Context) error {
	id, err := c.readID("Enter Interview ID to cancel: ")
	if err != nil {
		return err
	}
	ok, err := c.svc.Interviews.CancelInterview(ctx, kernel.NewInterviewID(id))
	if err != nil {
		return err
	}
	c.outcome(ok, "Interview cancelled.", fmt.Sprintf("No interview with ID %d.", id))
	return nil
}

func (c *Console) viewApplicationInterviews(ctx context.Context) error {
	id, err := c.readID("Enter Application ID: ")
	if err != nil {
		return err
	}
	interviews, err := c.svc.Interviews.ListApplicationInterviews(ctx, kernel.NewApplicationID(id))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(interviews))
	for _, iv := range interviews {
		rows = append(rows, []string{iv.ID.String(), stamp(iv.ScheduledAt), string(iv.Title), iv.Stage.String(), iv.Result.String(), iv.InterviewerName()})
	}
	c.table("ID\tDATE\tTITLE\tSTAGE\tRESULT\tINTERVIEWER", rows)
	return nil
}

// ============================================================================
// Offers
// ============================================================================

func (c *Console) offerActions() []action {
	return []action{
		{"1", "View pending offers", c.viewPendingOffers},
		{"2", "Create offer", c.createOffer},
		{"3", "Update offer", c.updateOffer},
		{"4", "Update offer status", c.updateOfferStatus},
		{"5", "View offers by candidate", c.viewCandidateOffers},
	}
}

func (c *Console) viewPendingOffers(ctx context.Context) error {
	offers, err := c.svc.Offers.ListPendingOffers(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, []string{o.ID.String(), o.CandidateName(), string(o.JobTitle), string(o.CompanyName), o.Salary.StringFixed(2), stamp(o.OfferDate)})
	}
	c.table("ID\tCANDIDATE\tJOB\tCOMPANY\tSALARY\tOFFERED", rows)
	return nil
}

func (c *Console) createOffer(ctx context.Context) error {
	applicationID, err := c.readID("Enter Application ID: ")
	if err != nil {
		return err
	}
	salary, err := c.readDecimal("Enter salary offered: ")
	if err != nil {
		return err
	}
	status, err := c.readLine(fmt.Sprintf("Status (%s): ", names(offer.Statuses())))
	if err != nil {
		return err
	}
	id, err := c.svc.Offers.CreateOffer(ctx, offer.CreateOfferRequest{
		ApplicationID: kernel.NewApplicationID(applicationID),
		Salary:        salary,
		Status:        status,
	})
	if err != nil {
		return err
	}
	c.printf("Offer created with ID: %d\n", id)
	return nil
}

func (c *Console) updateOffer(ctx context.Context) error {
	id, err := c.readID("Enter Offer ID: ")
	if err != nil {
		return err
	}
	salary, err := c.readDecimal("Enter new salary: ")
	if err != nil {
		return err
	}
	status, err := c.readLine(fmt.Sprintf("Status (%s): ", names(offer.Statuses())))
	if err != nil {
		return err
	}
	ok, err := c.svc.Offers.UpdateOffer(ctx, kernel.NewOfferID(id), offer.UpdateOfferRequest{Salary: salary, Status: status})
	if err != nil {
		return err
	}
	c.outcome(ok, "Offer updated.", fmt.Sprintf("No offer with ID %d.", id))
	return nil
}

func (c *Console) updateOfferStatus(ctx context.Context) error {
	id, err := c.readID("Enter Offer ID: ")
	if err != nil {
		return err
	}
	status, err := c.readLine(fmt.Sprintf("New status (%s): ", names(offer.Statuses())))
	if err != nil {
		return err
	}
	ok, err := c.svc.Offers.UpdateOfferStatus(ctx, kernel.NewOfferID(id), status)
	if err != nil {
		return err
	}
	c.outcome(ok, "Offer status updated.", fmt.Sprintf("No offer with ID %d.", id))
	return nil
}

func (c *Console) viewCandidateOffers(ctx context.Context) error {
	id, err := c.readID("Enter Candidate ID: ")
	if err != nil {
		return err
	}
	offers, err := c.svc.Offers.ListCandidateOffers(ctx, kernel.NewCandidateID(id))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, []string{o.ID.String(), string(o.JobTitle), string(o.CompanyName), o.Salary.StringFixed(2), o.Status.String(), stamp(o.OfferDate)})
	}
	c.table("ID\tJOB\tCOMPANY\tSALARY\tSTATUS\tOFFERED", rows)
	return nil
}

// ============================================================================
// Reports
// ============================================================================

func (c *Console) reportActions() []action {
	return []action{
		{"1", "Candidate Statistics", c.candidateStatistics},
		{"2", "Job Statistics", c.jobStatistics},
		{"3", "Offer Statistics", c.offerStatistics},
	}
}

func (c *Console) candidateStatistics(ctx context.Context) error {
	id, err := c.readID("Enter Candidate ID: ")
	if err != nil {
		return err
	}
	s, err := c.svc.Candidates.CandidateStatistics(ctx, kernel.NewCandidateID(id))
	if err != nil {
		return err
	}
	c.printf("\nCandidate Statistics:\n")
	c.printf("Total applications: %d (applied %d, screened %d, interview %d, offer %d, rejected %d)\n",
		s.TotalApplications, s.Applied, s.Screened, s.Interview, s.Offer, s.Rejected)
	c.printf("Interviews: %d\nOffers: %d\nSuccess rate: %.1f%%\n", s.TotalInterviews, s.TotalOffers, s.SuccessRate)
	return nil
}

func (c *Console) jobStatistics(ctx context.Context) error {
	id, err := c.readID("Enter Company ID: ")
	if err != nil {
		return err
	}
	s, err := c.svc.Jobs.CompanyStatistics(ctx, kernel.NewCompanyID(id))
	if err != nil {
		return err
	}
	c.printf("\nJob Statistics:\n")
	c.printf("Total jobs: %d (open %d, closed %d, on hold %d)\nApplications: %d\n",
		s.TotalJobs, s.Open, s.Closed, s.OnHold, s.TotalApplications)
	return nil
}

func (c *Console) offerStatistics(ctx context.Context) error {
	id, err := c.readID("Enter Company ID: ")
	if err != nil {
		return err
	}
	s, err := c.svc.Offers.CompanyStatistics(ctx, kernel.NewCompanyID(id))
	if err != nil {
		return err
	}
	average := "n/a"
	if s.AverageSalary.Valid {
		average = s.AverageSalary.Decimal.StringFixed(2)
	}
	c.printf("\nOffer Statistics:\n")
	c.printf("Total offers: %d (pending %d, accepted %d, declined %d)\nAverage salary: %s\n",
		s.Total, s.Pending, s.Accepted, s.Declined, average)
	return nil
}
