// Package repositories defines the record stores behind the job board.
// Implementations live in the memory, postgres and mongo subpackages and
// report missing records with utils.ErrNotFound and uniqueness violations
// with utils.ErrConflict.
package repositories

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	// GetByEmail returns the earliest registered user with that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type JobRepository interface {
	// Create puts the job at the front of the collection.
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	// List returns matching jobs newest-first.
	List(ctx context.Context, f models.JobFilter) ([]models.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error)
	Update(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	// Create fails with utils.ErrConflict when the (user, job) pair exists.
	Create(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.Application, error)
	ListByUser(ctx context.Context, userID string) ([]models.Application, error)
	ListByJobs(ctx context.Context, jobIDs ...string) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
}

type ResumeRepository interface {
	Insert(ctx context.Context, r *models.Resume) error
	LatestByUser(ctx context.Context, userID string) (*models.Resume, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// Store groups the record sets one service instance works against. A Store
// is built once per process (or per test) and handed to the services.
type Store struct {
	Users        UserRepository
	Jobs         JobRepository
	Applications ApplicationRepository
	Resumes      ResumeRepository
}
