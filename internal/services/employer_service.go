package services

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

type EmployerService interface {
	Jobs(ctx context.Context, actor *models.User) ([]models.Job, error)
	Analytics(ctx context.Context, actor *models.User) (*models.EmployerAnalytics, error)
}

type employerService struct {
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	latency      *Latency
}

func NewEmployerService(jobs repositories.JobRepository, applications repositories.ApplicationRepository, latency *Latency) EmployerService {
	return &employerService{jobs: jobs, applications: applications, latency: latency}
}

func (s *employerService) Jobs(ctx context.Context, actor *models.User) ([]models.Job, error) {
	const op = "EmployerService.Jobs"

	if err := requireEmployer(op, actor, "only employers can access their posted jobs"); err != nil {
		return nil, err
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	out, err := s.jobs.ListByEmployer(ctx, actor.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	if out == nil {
		out = []models.Job{}
	}
	return out, nil
}

func (s *employerService) Analytics(ctx context.Context, actor *models.User) (*models.EmployerAnalytics, error) {
	const op = "EmployerService.Analytics"

	if err := requireEmployer(op, actor, "only employers can access analytics"); err != nil {
		return nil, err
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByEmployer(ctx, actor.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}

	apps, err := s.applications.ListByJobs(ctx, ids...)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}

	out := models.NewEmployerAnalytics()
	out.TotalJobs = len(jobs)
	out.TotalApplications = len(apps)
	for _, a := range apps {
		out.ApplicationsByStatus[a.Status]++
	}
	return out, nil
}
