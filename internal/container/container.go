// Package container wires the store, repositories, services and handlers
// shared by the server and console binaries.
package container

import (
	"context"

	"github.com/Abraxas-365/hirely/internal/config"
	"github.com/Abraxas-365/hirely/internal/shell"
	"github.com/Abraxas-365/hirely/pkg/auth"
	"github.com/Abraxas-365/hirely/pkg/dbx"
	"github.com/Abraxas-365/hirely/pkg/logx"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationapi"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidateapi"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidateinfra"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidatesrv"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewapi"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewinfra"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewsrv"
	"github.com/Abraxas-365/hirely/recruitment/job/jobapi"
	"github.com/Abraxas-365/hirely/recruitment/job/jobinfra"
	"github.com/Abraxas-365/hirely/recruitment/job/jobsrv"
	"github.com/Abraxas-365/hirely/recruitment/offer/offerapi"
	"github.com/Abraxas-365/hirely/recruitment/offer/offerinfra"
	"github.com/Abraxas-365/hirely/recruitment/offer/offersrv"
	"github.com/Abraxas-365/hirely/recruitment/report/reportapi"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Recruitment Services
	JobService         *jobsrv.JobService
	CandidateService   *candidatesrv.CandidateService
	ApplicationService *applicationsrv.ApplicationService
	InterviewService   *interviewsrv.InterviewService
	OfferService       *offersrv.OfferService
}

// New opens the store, applies pending migrations and builds the services
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := dbx.Open(ctx, cfg.Database.Options())
	if err != nil {
		return nil, err
	}
	if err := dbx.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logx.WithFields(logx.Fields{"driver": cfg.Database.Driver}).Info("store ready")

	c := FromDB(db)
	c.Config = cfg
	return c, nil
}

// FromDB builds the services over an already migrated store
func FromDB(db *sqlx.DB) *Container {
	return &Container{
		DB:                 db,
		JobService:         jobsrv.NewJobService(jobinfra.NewSQLJobRepository(db)),
		CandidateService:   candidatesrv.NewCandidateService(candidateinfra.NewSQLCandidateRepository(db)),
		ApplicationService: applicationsrv.NewApplicationService(applicationinfra.NewSQLApplicationRepository(db)),
		InterviewService:   interviewsrv.NewInterviewService(interviewinfra.NewSQLInterviewRepository(db)),
		OfferService:       offersrv.NewOfferService(offerinfra.NewSQLOfferRepository(db)),
	}
}

// Shell exposes the services to the interactive console
func (c *Container) Shell() shell.Services {
	return shell.Services{
		Applications: c.ApplicationService,
		Candidates:   c.CandidateService,
		Jobs:         c.JobService,
		Interviews:   c.InterviewService,
		Offers:       c.OfferService,
	}
}

// RegisterRoutes mounts every recruitment API behind the token middleware
func (c *Container) RegisterRoutes(app *fiber.App, mw *auth.Middleware) {
	// Jobs: /api/jobs
	jobapi.RegisterRoutes(app, jobapi.NewHandlers(c.JobService), mw)

	// Candidates: /api/candidates
	candidateapi.RegisterRoutes(app, candidateapi.NewHandlers(c.CandidateService), mw)

	// Applications: /api/applications
	applicationapi.RegisterRoutes(app, applicationapi.NewHandlers(c.ApplicationService), mw)

	// Interviews: /api/interviews
	interviewapi.RegisterRoutes(app, interviewapi.NewHandlers(c.InterviewService), mw)

	// Offers: /api/offers
	offerapi.RegisterRoutes(app, offerapi.NewHandlers(c.OfferService), mw)

	// Reports: /api/reports
	reportapi.RegisterRoutes(app, reportapi.NewHandlers(c.CandidateService, c.JobService, c.OfferService), mw)
}

// Close releases the store handle
func (c *Container) Close() error {
	return c.DB.Close()
}
