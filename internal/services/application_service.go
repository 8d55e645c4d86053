package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

type ApplicationService interface {
	Apply(ctx context.Context, actor *models.User, jobID string, in models.ApplicationInput) (*models.Application, error)
	// ListMine returns the actor's applications, each carrying its job when
	// the job still exists.
	ListMine(ctx context.Context, actor *models.User) ([]models.Application, error)
	ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.Application, error)
	SetStatus(ctx context.Context, actor *models.User, applicationID string, status models.ApplicationStatus) (*models.Application, error)
}

type applicationService struct {
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	latency      *Latency
	log          logrus.FieldLogger
}

func NewApplicationService(jobs repositories.JobRepository, applications repositories.ApplicationRepository, latency *Latency, log logrus.FieldLogger) ApplicationService {
	return &applicationService{jobs: jobs, applications: applications, latency: latency, log: log}
}

func (s *applicationService) Apply(ctx context.Context, actor *models.User, jobID string, in models.ApplicationInput) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	if err := requireJobSeeker(op, actor, "only job seekers can apply for jobs"); err != nil {
		return nil, err
	}
	if _, err := getJob(ctx, s.jobs, op, jobID); err != nil {
		return nil, err
	}

	_, err := s.applications.FindByUserAndJob(ctx, actor.ID, jobID)
	switch {
	case err == nil:
		return nil, utils.E(utils.CodeConflict, op, "you have already applied for this job", nil)
	case !errors.Is(err, utils.ErrNotFound):
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing application", err)
	}

	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	app := &models.Application{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		JobID:       jobID,
		ResumeURL:   in.ResumeURL,
		CoverLetter: in.CoverLetter,
		Status:      models.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "you have already applied for this job", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}

	s.log.WithFields(logrus.Fields{"application_id": app.ID, "job_id": jobID, "user_id": actor.ID}).Info("application submitted")
	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, actor *models.User) ([]models.Application, error) {
	const op = "ApplicationService.ListMine"

	if actor == nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "user not authenticated", nil)
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}

	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		job, err := s.jobs.GetByID(ctx, a.JobID)
		switch {
		case err == nil:
			a.Job = job
		case !errors.Is(err, utils.ErrNotFound):
			return nil, utils.E(utils.CodeInternal, op, "failed to resolve job", err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *applicationService) ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.Application, error) {
	const op = "ApplicationService.ListForJob"

	if err := requireEmployer(op, actor, "only employers can view job applications"); err != nil {
		return nil, err
	}
	// A missing job is reported as not owned.
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if err := requireOwner(op, actor, job, "you can only view applications for your own jobs"); err != nil {
		return nil, err
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByJobs(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

func (s *applicationService) SetStatus(ctx context.Context, actor *models.User, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	const op = "ApplicationService.SetStatus"

	if err := requireEmployer(op, actor, "only employers can update application statuses"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "status must be one of pending, reviewed, accepted, rejected", nil)
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if err := requireOwner(op, actor, job, "you can only update applications for your own jobs"); err != nil {
		return nil, err
	}

	if err := s.applications.UpdateStatus(ctx, app.ID, status); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update application status", err)
	}
	previous := app.Status
	app.Status = status

	s.log.WithFields(logrus.Fields{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"from":           previous,
		"to":             status,
	}).Info("application status changed")
	return app, nil
}
