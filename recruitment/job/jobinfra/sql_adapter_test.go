package jobinfra

import (
	"context"
	"testing"

	"github.com/Abraxas-365/hirely/internal/storetest"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/job"
	"github.com/jmoiron/sqlx"
)

func setup(t *testing.T) (*SQLJobRepository, *sqlx.DB, storetest.Directory, *storetest.Clock) {
	t.Helper()
	db := storetest.Open(t)
	clock := storetest.NewClock()
	return NewSQLJobRepository(db).WithClock(clock.Now), db, storetest.SeedDirectory(t, db), clock
}

func createJob(t *testing.T, repo *SQLJobRepository, dir storetest.Directory, title string, status job.Status) kernel.JobID {
	t.Helper()
	id, err := repo.Create(context.Background(), job.CreateParams{
		CompanyID:    dir.Company,
		DepartmentID: dir.Department,
		Title:        kernel.JobTitle(title),
		Description:  "desc",
		Status:       status,
	})
	if err != nil {
		t.Fatalf("Create %s: %v", title, err)
	}
	return id
}

func TestCreateGetRoundTrip(t *testing.T) {
	repo, _, dir, clock := setup(t)
	ctx := context.Background()
	createdAt := clock.Peek()

	id := createJob(t, repo, dir, "Engineer", job.StatusOpen)
	if id.IsEmpty() {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("job not found")
	}
	if got.Title != "Engineer" || got.Description != "desc" || got.Status != job.StatusOpen {
		t.Fatalf("stored fields = %+v", got.Job)
	}
	if got.CompanyID != dir.Company || got.DepartmentID != dir.Department {
		t.Fatalf("refs = %d/%d", got.CompanyID, got.DepartmentID)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, createdAt)
	}
	if got.CompanyName != "Acme" || got.DepartmentName != "Engineering" || got.ApplicationCount != 0 {
		t.Fatalf("joined fields = %q %q %d", got.CompanyName, got.DepartmentName, got.ApplicationCount)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	repo, _, _, _ := setup(t)

	got, err := repo.GetByID(context.Background(), 4242)
	if err != nil || got != nil {
		t.Fatalf("GetByID = %v, %v; want nil, nil", got, err)
	}
}

func TestCreateInvalidReference(t *testing.T) {
	repo, _, dir, _ := setup(t)

	id, err := repo.Create(context.Background(), job.CreateParams{
		CompanyID:    999,
		DepartmentID: dir.Department,
		Title:        "Ghost",
		Status:       job.StatusOpen,
	})
	if id != 0 {
		t.Fatalf("id = %d, want sentinel 0", id)
	}
	if !errx.IsCode(err, job.CodeInvalidReference) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdate(t *testing.T) {
	repo, _, dir, _ := setup(t)
	ctx := context.Background()
	id := createJob(t, repo, dir, "Engineer", job.StatusOpen)

	ok, err := repo.Update(ctx, id, job.UpdateParams{Title: "Staff Engineer", Description: "new", Status: job.StatusOnHold})
	if err != nil || !ok {
		t.Fatalf("Update = %v, %v", ok, err)
	}
	got, _ := repo.GetByID(ctx, id)
	if got.Title != "Staff Engineer" || got.Description != "new" || got.Status != job.StatusOnHold {
		t.Fatalf("after update = %+v", got.Job)
	}

	ok, err = repo.UpdateStatus(ctx, id, job.StatusClosed)
	if err != nil || !ok {
		t.Fatalf("UpdateStatus = %v, %v", ok, err)
	}
	got, _ = repo.GetByID(ctx, id)
	if got.Status != job.StatusClosed {
		t.Fatalf("status = %s", got.Status)
	}
}

func TestUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo, _, dir, _ := setup(t)
	ctx := context.Background()
	id := createJob(t, repo, dir, "Engineer", job.StatusOpen)

	ok, err := repo.Update(ctx, id+100, job.UpdateParams{Title: "X", Status: job.StatusClosed})
	if err != nil || ok {
		t.Fatalf("Update(missing) = %v, %v; want false, nil", ok, err)
	}
	ok, err = repo.UpdateStatus(ctx, id+100, job.StatusClosed)
	if err != nil || ok {
		t.Fatalf("UpdateStatus(missing) = %v, %v; want false, nil", ok, err)
	}

	got, _ := repo.GetByID(ctx, id)
	if got.Title != "Engineer" || got.Status != job.StatusOpen {
		t.Fatalf("existing row changed: %+v", got.Job)
	}
}

func TestDeleteTwice(t *testing.T) {
	repo, _, dir, _ := setup(t)
	ctx := context.Background()
	id := createJob(t, repo, dir, "Engineer", job.StatusOpen)

	ok, err := repo.Delete(ctx, id)
	if err != nil || !ok {
		t.Fatalf("first Delete = %v, %v", ok, err)
	}
	ok, err = repo.Delete(ctx, id)
	if err != nil || ok {
		t.Fatalf("second Delete = %v, %v; want false, nil", ok, err)
	}
}

func TestDeleteReferencedJobIsRejected(t *testing.T) {
	repo, db, dir, _ := setup(t)
	ctx := context.Background()
	id := createJob(t, repo, dir, "Engineer", job.StatusOpen)
	storetest.Application(t, db, id, storetest.Candidate(t, db, dir.Candidate), "applied")

	ok, err := repo.Delete(ctx, id)
	if ok || !errx.IsCode(err, job.CodeInvalidReference) {
		t.Fatalf("Delete(referenced) = %v, %v", ok, err)
	}
}

func TestListOrdering(t *testing.T) {
	repo, db, dir, _ := setup(t)
	ctx := context.Background()

	j1 := createJob(t, repo, dir, "J1", job.StatusOpen)
	j2 := createJob(t, repo, dir, "J2", job.StatusClosed)
	j3 := createJob(t, repo, dir, "J3", job.StatusOpen)

	other := storetest.Company(t, db, "Globex")
	otherDept := storetest.Department(t, db, other, "Sales")
	j4, err := repo.Create(ctx, job.CreateParams{CompanyID: other, DepartmentID: otherDept, Title: "J4", Status: job.StatusOpen})
	if err != nil {
		t.Fatalf("Create J4: %v", err)
	}

	tests := []struct {
		name string
		list func() ([]job.Details, error)
		want []kernel.JobID
	}{
		{"all", func() ([]job.Details, error) { return repo.ListAll(ctx) }, []kernel.JobID{j4, j3, j2, j1}},
		{"open", func() ([]job.Details, error) { return repo.ListOpen(ctx) }, []kernel.JobID{j4, j3, j1}},
		{"company", func() ([]job.Details, error) { return repo.ListByCompany(ctx, dir.Company) }, []kernel.JobID{j3, j2, j1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := tt.list()
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(jobs) != len(tt.want) {
				t.Fatalf("got %d jobs, want %d", len(jobs), len(tt.want))
			}
			for i, id := range tt.want {
				if jobs[i].ID != id {
					t.Fatalf("position %d = %d, want %d", i, jobs[i].ID, id)
				}
			}
		})
	}

	empty, err := repo.ListByCompany(ctx, 777)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("unknown company = %v, %v; want empty slice", empty, err)
	}
}

func TestStatistics(t *testing.T) {
	repo, db, dir, _ := setup(t)
	ctx := context.Background()

	open := createJob(t, repo, dir, "A", job.StatusOpen)
	createJob(t, repo, dir, "B", job.StatusOpen)
	closed := createJob(t, repo, dir, "C", job.StatusClosed)
	createJob(t, repo, dir, "D", job.StatusOnHold)

	cand := storetest.Candidate(t, db, dir.Candidate)
	storetest.Application(t, db, open, cand, "applied")
	storetest.Application(t, db, open, cand, "rejected")
	storetest.Application(t, db, closed, cand, "offer")

	stats, err := repo.Statistics(ctx, dir.Company)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	want := job.Statistics{CompanyID: dir.Company, TotalJobs: 4, Open: 2, Closed: 1, OnHold: 1, TotalApplications: 3}
	if *stats != want {
		t.Fatalf("stats = %+v, want %+v", *stats, want)
	}

	got, _ := repo.GetByID(ctx, open)
	if got.ApplicationCount != 2 {
		t.Fatalf("application_count = %d", got.ApplicationCount)
	}

	none, err := repo.Statistics(ctx, 999)
	if err != nil {
		t.Fatalf("Statistics(empty): %v", err)
	}
	if none.TotalJobs != 0 || none.TotalApplications != 0 {
		t.Fatalf("empty company stats = %+v", none)
	}
}
