package interviewinfra

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/internal/storetest"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/interview"
)

type fixture struct {
	repo        *SQLInterviewRepository
	clock       *storetest.Clock
	dir         storetest.Directory
	application kernel.ApplicationID
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := storetest.Open(t)
	dir := storetest.SeedDirectory(t, db)
	clock := storetest.NewClock()
	jobID := storetest.Job(t, db, dir, "Engineer")
	candidateID := storetest.Candidate(t, db, dir.Candidate)
	return fixture{
		repo:        NewSQLInterviewRepository(db).WithClock(clock.Now),
		clock:       clock,
		dir:         dir,
		application: storetest.Application(t, db, jobID, candidateID, "interview"),
	}
}

func (f fixture) schedule(t *testing.T, title string, at time.Time) kernel.InterviewID {
	t.Helper()
	id, err := f.repo.Schedule(context.Background(), interview.ScheduleParams{
		Title:         kernel.InterviewTitle(title),
		InterviewerID: f.dir.Interviewer,
		ApplicationID: f.application,
		Stage:         interview.StageTechnical,
		ScheduledAt:   at,
	})
	if err != nil {
		t.Fatalf("Schedule %s: %v", title, err)
	}
	return id
}

func TestScheduleGetRoundTrip(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	createdAt := f.clock.Peek()
	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	id := f.schedule(t, "System design", at)

	got, err := f.repo.GetByID(ctx, id)
	if err != nil || got == nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if got.Title != "System design" || got.Stage != interview.StageTechnical || got.ApplicationID != f.application {
		t.Fatalf("stored fields = %+v", got.Interview)
	}
	if !got.ScheduledAt.Equal(at) || !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("dates = %v/%v", got.ScheduledAt, got.CreatedAt)
	}
	if !got.IsPending() || got.InterviewerName() != "Grace Hopper" {
		t.Fatalf("result/interviewer = %s/%s", got.Result, got.InterviewerName())
	}

	if got, err := f.repo.GetByID(ctx, id+1); got != nil || err != nil {
		t.Fatalf("GetByID(missing) = %v, %v", got, err)
	}
}

func TestScheduleInvalidReference(t *testing.T) {
	f := setup(t)

	id, err := f.repo.Schedule(context.Background(), interview.ScheduleParams{
		Title:         "Phone screen",
		InterviewerID: 404,
		ApplicationID: f.application,
		Stage:         interview.StageHR,
		ScheduledAt:   time.Now(),
	})
	if id != 0 || !errx.IsCode(err, interview.CodeInvalidReference) {
		t.Fatalf("Schedule(unknown interviewer) = %d, %v", id, err)
	}
}

func TestResultAndCancel(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	passed := f.schedule(t, "Round 1", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))
	cancelled := f.schedule(t, "Round 2", time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC))

	if ok, err := f.repo.UpdateResult(ctx, passed, interview.ResultPass); err != nil || !ok {
		t.Fatalf("UpdateResult = %v, %v", ok, err)
	}
	if ok, err := f.repo.Cancel(ctx, cancelled); err != nil || !ok {
		t.Fatalf("Cancel = %v, %v", ok, err)
	}
	if ok, err := f.repo.Cancel(ctx, cancelled+10); err != nil || ok {
		t.Fatalf("Cancel(missing) = %v, %v", ok, err)
	}

	got, _ := f.repo.GetByID(ctx, passed)
	if got.Result != interview.ResultPass {
		t.Fatalf("result = %s", got.Result)
	}
	got, _ = f.repo.GetByID(ctx, cancelled)
	if got.Result != interview.ResultCancelled {
		t.Fatalf("cancelled result = %s", got.Result)
	}

	list, err := f.repo.ListByApplication(ctx, f.application)
	if err != nil || len(list) != 2 || list[0].ID != cancelled || list[1].ID != passed {
		t.Fatalf("ListByApplication = %v, %v", list, err)
	}
}

func TestListUpcoming(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.schedule(t, "Past", time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	later := f.schedule(t, "Later", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC))
	sooner := f.schedule(t, "Sooner", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	failed := f.schedule(t, "Failed", time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))
	cancelled := f.schedule(t, "Cancelled", time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC))

	if _, err := f.repo.UpdateResult(ctx, failed, interview.ResultFail); err != nil {
		t.Fatal(err)
	}
	if _, err := f.repo.Cancel(ctx, cancelled); err != nil {
		t.Fatal(err)
	}

	upcoming, err := f.repo.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].ID != sooner || upcoming[1].ID != later {
		t.Fatalf("ListUpcoming = %+v", upcoming)
	}
	if upcoming[0].CandidateName() != "Ada Lovelace" || upcoming[0].JobTitle != "Engineer" || upcoming[0].InterviewerName() != "Grace Hopper" {
		t.Fatalf("upcoming fields = %+v", upcoming[0])
	}

	f.clock.Set(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	upcoming, err = f.repo.ListUpcoming(ctx)
	if err != nil || upcoming == nil || len(upcoming) != 0 {
		t.Fatalf("ListUpcoming(after all) = %#v, %v", upcoming, err)
	}
}

func TestDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.schedule(t, "Round", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))

	if ok, err := f.repo.Delete(ctx, id); err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if ok, err := f.repo.Delete(ctx, id); err != nil || ok {
		t.Fatalf("second Delete = %v, %v", ok, err)
	}
}
