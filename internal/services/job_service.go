package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
)

type JobService interface {
	List(ctx context.Context, f models.JobFilter) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, actor *models.User, in models.JobInput) (*models.Job, error)
	Update(ctx context.Context, actor *models.User, id string, patch models.JobPatch) (*models.Job, error)
	// Delete reports false when the job does not exist. Applications to the
	// job are kept.
	Delete(ctx context.Context, actor *models.User, id string) (bool, error)
}

type jobService struct {
	jobs    repositories.JobRepository
	latency *Latency
	log     logrus.FieldLogger
}

func NewJobService(jobs repositories.JobRepository, latency *Latency, log logrus.FieldLogger) JobService {
	return &jobService{jobs: jobs, latency: latency, log: log}
}

func (s *jobService) List(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	const op = "JobService.List"

	if f.JobType != "" && !f.JobType.Valid() {
		return []models.Job{}, nil
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	out, err := s.jobs.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	if out == nil {
		out = []models.Job{}
	}
	return out, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}
	return getJob(ctx, s.jobs, op, id)
}

func (s *jobService) Create(ctx context.Context, actor *models.User, in models.JobInput) (*models.Job, error) {
	const op = "JobService.Create"

	if err := requireEmployer(op, actor, "only employers can create jobs"); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	if !in.JobType.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_type must be one of full-time, part-time, contract, remote", nil)
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	job := &models.Job{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Company:      in.Company,
		CompanyLogo:  in.CompanyLogo,
		Description:  in.Description,
		Requirements: models.NormalizeRequirements(in.Requirements),
		Location:     in.Location,
		Salary:       in.Salary,
		JobType:      in.JobType,
		EmployerID:   actor.ID,
		PostedAt:     time.Now().UTC(),
		Featured:     in.Featured,
	}
	if strings.TrimSpace(job.Company) == "" {
		job.Company = actor.Name
	}
	if job.CompanyLogo == "" {
		job.CompanyLogo = actor.Avatar
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	s.log.WithFields(logrus.Fields{"job_id": job.ID, "employer_id": actor.ID}).Info("job posted")
	return job, nil
}

func (s *jobService) Update(ctx context.Context, actor *models.User, id string, patch models.JobPatch) (*models.Job, error) {
	const op = "JobService.Update"

	if err := requireEmployer(op, actor, "only employers can update jobs"); err != nil {
		return nil, err
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return nil, err
	}

	job, err := getJob(ctx, s.jobs, op, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(op, actor, job, "you can only update your own jobs"); err != nil {
		return nil, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title cannot be empty", nil)
	}
	if patch.JobType != nil && !patch.JobType.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_type must be one of full-time, part-time, contract, remote", nil)
	}

	patch.ApplyTo(job)
	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, actor *models.User, id string) (bool, error) {
	const op = "JobService.Delete"

	if err := requireEmployer(op, actor, "only employers can delete jobs"); err != nil {
		return false, err
	}

	job, err := getJob(ctx, s.jobs, op, id)
	if utils.IsCode(err, utils.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := requireOwner(op, actor, job, "you can only delete your own jobs"); err != nil {
		return false, err
	}
	if err := s.latency.wait(ctx, op); err != nil {
		return false, err
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return false, nil
		}
		return false, utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}

	s.log.WithFields(logrus.Fields{"job_id": id, "employer_id": actor.ID}).Info("job deleted")
	return true, nil
}

func getJob(ctx context.Context, jobs repositories.JobRepository, op, id string) (*models.Job, error) {
	job, err := jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return job, nil
}
