package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/hirely/internal/storetest"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidateinfra"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidatesrv"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewinfra"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewsrv"
	"github.com/Abraxas-365/hirely/recruitment/job/jobinfra"
	"github.com/Abraxas-365/hirely/recruitment/job/jobsrv"
	"github.com/Abraxas-365/hirely/recruitment/offer/offerinfra"
	"github.com/Abraxas-365/hirely/recruitment/offer/offersrv"
	"github.com/jmoiron/sqlx"
)

func services(db *sqlx.DB) Services {
	return Services{
		Applications: applicationsrv.NewApplicationService(applicationinfra.NewSQLApplicationRepository(db)),
		Candidates:   candidatesrv.NewCandidateService(candidateinfra.NewSQLCandidateRepository(db)),
		Jobs:         jobsrv.NewJobService(jobinfra.NewSQLJobRepository(db)),
		Interviews:   interviewsrv.NewInterviewService(interviewinfra.NewSQLInterviewRepository(db)),
		Offers:       offersrv.NewOfferService(offerinfra.NewSQLOfferRepository(db)),
	}
}

func run(t *testing.T, db *sqlx.DB, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := New(services(db), in, &out).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestConsoleSession(t *testing.T) {
	db := storetest.Open(t)
	dir := storetest.SeedDirectory(t, db)
	jobID := storetest.Job(t, db, dir, "Engineer")

	out := run(t, db,
		// candidate for Ada
		"2", "2", dir.Candidate.String(), "http://x/r.pdf",
		// application for that candidate
		"1", "5", jobID.String(), "1",
		// unknown application status
		"1", "4", "1", "hired",
		// malformed interview date
		"4", "2", "Screen", dir.Interviewer.String(), "1", "HR", "tomorrow",
		// offer with the default status
		"5", "2", "1", "85000.50", "",
		"6", "1", "1",
		"6", "3", dir.Company.String(),
		"2", "5", "love",
		"9",
		"0",
	)

	for _, want := range []string{
		"Candidate created with ID: 1",
		"Application created with ID: 1",
		"Error: ",
		"does not match " + DateLayout,
		"Offer created with ID: 1",
		"Total applications: 1 (applied 1, screened 0, interview 0, offer 0, rejected 0)",
		"Total offers: 1 (pending 1, accepted 0, declined 0)",
		"Average salary: 85000.50",
		"Ada Lovelace",
		"Invalid choice.",
		"Goodbye.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleReportsMissingRows(t *testing.T) {
	db := storetest.Open(t)
	storetest.SeedDirectory(t, db)

	out := run(t, db,
		"3", "5", "42",
		"2", "1",
		"5", "1",
		"6", "3", "42",
		"0",
	)

	for _, want := range []string{
		"No job with ID 42.",
		"No records found.",
		"Average salary: n/a",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleRejectsBadInput(t *testing.T) {
	db := storetest.Open(t)

	out := run(t, db,
		"2", "4", "abc",
		"5", "2", "1", "lots",
		"0",
	)

	for _, want := range []string{
		`"abc" is not a positive number`,
		`"lots" is not an amount`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	db := storetest.Open(t)

	var out bytes.Buffer
	err := New(services(db), strings.NewReader("2\n2\n"), &out).Run(context.Background())
	if err != nil {
		t.Fatalf("Run at EOF = %v, want nil", err)
	}
}

func TestConsoleStopsWhenCancelled(t *testing.T) {
	db := storetest.Open(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(services(db), strings.NewReader("1\n"), &out).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run(cancelled) = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("cancelled console wrote %q", out.String())
	}
}

func TestConsoleStopsWhileWaitingForInput(t *testing.T) {
	db := storetest.Open(t)
	in, feed := io.Pipe()
	t.Cleanup(func() { feed.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(services(db), in, io.Discard).Run(ctx) }()

	time.AfterFunc(50*time.Millisecond, cancel)
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
}
