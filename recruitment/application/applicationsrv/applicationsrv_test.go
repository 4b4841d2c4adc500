package applicationsrv

import (
	"context"
	"testing"

	"github.com/Abraxas-365/hirely/internal/storetest"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/application"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationinfra"
)

// untouchable fails the test if any repository method is reached
type untouchable struct {
	application.Repository
	t *testing.T
}

func (u untouchable) Create(context.Context, application.CreateParams) (kernel.ApplicationID, error) {
	u.t.Fatal("Create reached the store")
	return 0, nil
}

func (u untouchable) UpdateStatus(context.Context, kernel.ApplicationID, application.Status) (bool, error) {
	u.t.Fatal("UpdateStatus reached the store")
	return false, nil
}

func (u untouchable) ListByStatus(context.Context, application.Status) ([]application.Application, error) {
	u.t.Fatal("ListByStatus reached the store")
	return nil, nil
}

func TestUnknownStatusNeverReachesTheStore(t *testing.T) {
	svc := NewApplicationService(untouchable{t: t})
	ctx := context.Background()

	if _, err := svc.CreateApplication(ctx, application.CreateApplicationRequest{JobID: 1, CandidateID: 1, Status: "hired"}); !errx.IsCode(err, application.CodeInvalidStatus) {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateApplication(ctx, application.CreateApplicationRequest{CandidateID: 1}); !errx.IsType(err, errx.TypeValidation) {
		t.Fatalf("create without job: %v", err)
	}
	if _, err := svc.UpdateApplicationStatus(ctx, 1, "Interview"); !errx.IsCode(err, application.CodeInvalidStatus) {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.ListApplicationsByStatus(ctx, "0"); !errx.IsCode(err, application.CodeInvalidStatus) {
		t.Fatalf("list: %v", err)
	}
}

func TestServiceAgainstStore(t *testing.T) {
	db := storetest.Open(t)
	dir := storetest.SeedDirectory(t, db)
	jobID := storetest.Job(t, db, dir, "Engineer")
	candidateID := storetest.Candidate(t, db, dir.Candidate)
	svc := NewApplicationService(applicationinfra.NewSQLApplicationRepository(db))
	ctx := context.Background()

	id, err := svc.CreateApplication(ctx, application.CreateApplicationRequest{JobID: jobID, CandidateID: candidateID})
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	app, err := svc.RequireApplication(ctx, id)
	if err != nil || app.CurrentStatus != application.StatusApplied {
		t.Fatalf("RequireApplication = %+v, %v", app, err)
	}
	if _, err := svc.RequireApplication(ctx, id+1); !errx.IsCode(err, application.CodeApplicationNotFound) {
		t.Fatalf("RequireApplication(missing) = %v", err)
	}

	if ok, err := svc.UpdateApplicationStatus(ctx, id, "screened"); err != nil || !ok {
		t.Fatalf("UpdateApplicationStatus = %v, %v", ok, err)
	}
	screened, err := svc.ListApplicationsByStatus(ctx, "screened")
	if err != nil || len(screened) != 1 {
		t.Fatalf("ListApplicationsByStatus = %v, %v", screened, err)
	}

	byJob, err := svc.ListJobApplications(ctx, jobID)
	if err != nil || len(byJob) != 1 {
		t.Fatalf("ListJobApplications = %v, %v", byJob, err)
	}

	if ok, err := svc.DeleteApplication(ctx, id); err != nil || !ok {
		t.Fatalf("DeleteApplication = %v, %v", ok, err)
	}
	byCandidate, err := svc.ListCandidateApplications(ctx, candidateID)
	if err != nil || len(byCandidate) != 0 {
		t.Fatalf("ListCandidateApplications = %v, %v", byCandidate, err)
	}
}
