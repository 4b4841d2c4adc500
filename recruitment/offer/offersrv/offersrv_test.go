package offersrv

import (
	"context"
	"testing"

	"github.com/Abraxas-365/hirely/internal/storetest"
	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/pkg/kernel"
	"github.com/Abraxas-365/hirely/recruitment/offer"
	"github.com/Abraxas-365/hirely/recruitment/offer/offerinfra"
	"github.com/shopspring/decimal"
)

// untouchable fails the test if any repository method is reached
type untouchable struct {
	offer.Repository
	t *testing.T
}

func (u untouchable) Create(context.Context, offer.CreateParams) (kernel.OfferID, error) {
	u.t.Fatal("Create reached the store")
	return 0, nil
}

func (u untouchable) Update(context.Context, kernel.OfferID, offer.UpdateParams) (bool, error) {
	u.t.Fatal("Update reached the store")
	return false, nil
}

func (u untouchable) UpdateStatus(context.Context, kernel.OfferID, offer.Status) (bool, error) {
	u.t.Fatal("UpdateStatus reached the store")
	return false, nil
}

func TestInvalidRequestsNeverReachTheStore(t *testing.T) {
	svc := NewOfferService(untouchable{t: t})
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code *errx.Code
	}{
		{"negative salary", func() error {
			_, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: 1, Salary: decimal.NewFromInt(-5)})
			return err
		}, &offer.CodeInvalidSalary},
		{"salary with three decimals", func() error {
			_, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: 1, Salary: decimal.RequireFromString("1234.567")})
			return err
		}, &offer.CodeInvalidSalary},
		{"salary beyond the column", func() error {
			_, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: 1, Salary: decimal.RequireFromString("123456789012.34")})
			return err
		}, &offer.CodeInvalidSalary},
		{"salary at the ceiling", func() error {
			_, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: 1, Salary: decimal.New(1, 10)})
			return err
		}, &offer.CodeInvalidSalary},
		{"update salary with three decimals", func() error {
			_, err := svc.UpdateOffer(ctx, 1, offer.UpdateOfferRequest{Salary: decimal.RequireFromString("0.001"), Status: "pending"})
			return err
		}, &offer.CodeInvalidSalary},
		{"unknown status", func() error {
			_, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: 1, Salary: decimal.NewFromInt(5), Status: "rescinded"})
			return err
		}, &offer.CodeInvalidStatus},
		{"zero application", func() error {
			_, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{Salary: decimal.NewFromInt(5)})
			return err
		}, nil},
		{"update negative salary", func() error {
			_, err := svc.UpdateOffer(ctx, 1, offer.UpdateOfferRequest{Salary: decimal.NewFromFloat(-0.01), Status: "pending"})
			return err
		}, &offer.CodeInvalidSalary},
		{"status by index", func() error {
			_, err := svc.UpdateOfferStatus(ctx, 1, "1")
			return err
		}, &offer.CodeInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errx.IsType(err, errx.TypeValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if tt.code != nil && !errx.IsCode(err, *tt.code) {
				t.Fatalf("err = %v, want %s", err, tt.code.Code)
			}
		})
	}
}

func TestServiceAgainstStore(t *testing.T) {
	db := storetest.Open(t)
	dir := storetest.SeedDirectory(t, db)
	candidateID := storetest.Candidate(t, db, dir.Candidate)
	appID := storetest.Application(t, db, storetest.Job(t, db, dir, "Engineer"), candidateID, "offer")
	svc := NewOfferService(offerinfra.NewSQLOfferRepository(db))
	ctx := context.Background()

	id, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: appID, Salary: decimal.RequireFromString("120000")})
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}

	pending, err := svc.ListPendingOffers(ctx)
	if err != nil || len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("ListPendingOffers = %v, %v", pending, err)
	}

	if ok, err := svc.UpdateOfferStatus(ctx, id, "accepted"); err != nil || !ok {
		t.Fatalf("UpdateOfferStatus = %v, %v", ok, err)
	}
	got, err := svc.RequireOffer(ctx, id)
	if err != nil || got.Status != offer.StatusAccepted {
		t.Fatalf("RequireOffer = %+v, %v", got, err)
	}

	stats, err := svc.CompanyStatistics(ctx, dir.Company)
	if err != nil || stats.Accepted != 1 || !stats.AverageSalary.Decimal.Equal(decimal.NewFromInt(120000)) {
		t.Fatalf("CompanyStatistics = %+v, %v", stats, err)
	}

	if ok, err := svc.UpdateOffer(ctx, id+1, offer.UpdateOfferRequest{Salary: decimal.Zero, Status: "declined"}); err != nil || ok {
		t.Fatalf("UpdateOffer(missing) = %v, %v", ok, err)
	}
	if _, err := svc.RequireOffer(ctx, id+1); !errx.IsCode(err, offer.CodeOfferNotFound) {
		t.Fatalf("RequireOffer(missing) = %v", err)
	}

	if ok, err := svc.DeleteOffer(ctx, id); err != nil || !ok {
		t.Fatalf("DeleteOffer = %v, %v", ok, err)
	}
	offers, err := svc.ListCandidateOffers(ctx, candidateID)
	if err != nil || len(offers) != 0 {
		t.Fatalf("ListCandidateOffers = %v, %v", offers, err)
	}
}

func TestSalaryRoundTripsAtColumnLimits(t *testing.T) {
	db := storetest.Open(t)
	dir := storetest.SeedDirectory(t, db)
	appID := storetest.Application(t, db, storetest.Job(t, db, dir, "Engineer"), storetest.Candidate(t, db, dir.Candidate), "offer")
	svc := NewOfferService(offerinfra.NewSQLOfferRepository(db))
	ctx := context.Background()

	for _, amount := range []string{"9999999999.99", "1234.5", "0.01"} {
		want := decimal.RequireFromString(amount)
		id, err := svc.CreateOffer(ctx, offer.CreateOfferRequest{ApplicationID: appID, Salary: want})
		if err != nil {
			t.Fatalf("CreateOffer(%s): %v", amount, err)
		}
		got, err := svc.RequireOffer(ctx, id)
		if err != nil || !got.Salary.Equal(want) {
			t.Fatalf("RequireOffer(%s) = %v, %v", amount, got, err)
		}
	}
}
