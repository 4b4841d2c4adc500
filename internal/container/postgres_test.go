package container

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/internal/storetest"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/recruitment/application"
	"github.com/Abraxas-365/hirely/recruitment/candidate"
	"github.com/Abraxas-365/hirely/recruitment/interview"
	"github.com/Abraxas-365/hirely/recruitment/job"
	"github.com/Abraxas-365/hirely/recruitment/offer"
	"github.com/Abraxas-365/hirely/recruitment/offer/offerinfra"
	"github.com/shopspring/decimal"
)

// TestPostgresRecruitmentFlow runs the hiring flow against a real PostgreSQL
// server. Set DATABASE_HOST (and the POSTGRES_* credentials) to enable it.
func TestPostgresRecruitmentFlow(t *testing.T) {
	db := storetest.OpenPostgres(t)
	dir := storetest.SeedDirectory(t, db)
	svc := FromDB(db).Shell()
	ctx := context.Background()

	jobID, err := svc.Jobs.CreateJob(ctx, job.CreateJobRequest{
		CompanyID:    dir.Company,
		DepartmentID: dir.Department,
		Title:        "Engineer",
		Status:       "open",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	candidateID, err := svc.Candidates.CreateCandidate(ctx, candidate.CreateCandidateRequest{UserID: dir.Candidate})
	if err != nil {
		t.Fatalf("CreateCandidate: %v", err)
	}
	if found, err := svc.Candidates.SearchCandidates(ctx, "LOVE"); err != nil || len(found) != 1 || found[0].ID != candidateID {
		t.Fatalf("SearchCandidates(LOVE) = %v, %v", found, err)
	}
	// "_" must not act as a wildcard, or "a_a" would match "ada"
	if found, err := svc.Candidates.SearchCandidates(ctx, "a_a"); err != nil || len(found) != 0 {
		t.Fatalf("SearchCandidates(a_a) = %v, %v", found, err)
	}

	appID, err := svc.Applications.CreateApplication(ctx, application.CreateApplicationRequest{JobID: jobID, CandidateID: candidateID})
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := svc.Applications.CreateApplication(ctx, application.CreateApplicationRequest{JobID: jobID + 100, CandidateID: candidateID}); !errx.IsCode(err, application.CodeInvalidReference) {
		t.Fatalf("CreateApplication(missing job) = %v", err)
	}

	interviewID, err := svc.Interviews.ScheduleInterview(ctx, interview.ScheduleInterviewRequest{
		Title:         "Systems design",
		InterviewerID: dir.Interviewer,
		ApplicationID: appID,
		Stage:         string(interview.StageTechnical),
		ScheduledAt:   time.Now().UTC().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("ScheduleInterview: %v", err)
	}
	upcoming, err := svc.Interviews.ListUpcomingInterviews(ctx)
	if err != nil || len(upcoming) != 1 || upcoming[0].ID != interviewID {
		t.Fatalf("ListUpcomingInterviews = %v, %v", upcoming, err)
	}

	salaries := []string{"9999999999.99", "120000.50"}
	for _, amount := range salaries {
		want := decimal.RequireFromString(amount)
		id, err := svc.Offers.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: appID, Salary: want})
		if err != nil {
			t.Fatalf("CreateOffer(%s): %v", amount, err)
		}
		got, err := svc.Offers.RequireOffer(ctx, id)
		if err != nil || !got.Salary.Equal(want) {
			t.Fatalf("RequireOffer(%s) = %v, %v", amount, got, err)
		}
	}

	stats, err := svc.Offers.CompanyStatistics(ctx, dir.Company)
	wantAverage := decimal.RequireFromString("5000060000.245")
	if err != nil || stats.Total != 2 || !stats.AverageSalary.Valid || !stats.AverageSalary.Decimal.Equal(wantAverage) {
		t.Fatalf("CompanyStatistics = %+v, %v", stats, err)
	}

	// numeric overflow surfaces as a constraint violation when the service
	// checks are bypassed
	repo := offerinfra.NewSQLOfferRepository(db)
	if _, err := repo.Create(ctx, offer.CreateParams{ApplicationID: appID, Salary: decimal.New(1, 11), Status: offer.StatusPending}); !errx.IsCode(err, offer.CodeConstraintViolation) {
		t.Fatalf("Create(overflowing salary) = %v", err)
	}

	if ok, err := svc.Interviews.DeleteInterview(ctx, interviewID); err != nil || !ok {
		t.Fatalf("DeleteInterview = %v, %v", ok, err)
	}
	jobStats, err := svc.Jobs.CompanyStatistics(ctx, dir.Company)
	if err != nil || jobStats.TotalJobs != 1 || jobStats.Open != 1 || jobStats.TotalApplications != 1 {
		t.Fatalf("Jobs.CompanyStatistics = %+v, %v", jobStats, err)
	}
}
