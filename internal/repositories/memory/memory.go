// Package memory keeps every record set in process memory. All repositories
// returned by NewStore share one lock, so check-then-insert sequences inside a
// single call are atomic.
package memory

import (
	"sync"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
)

type db struct {
	mu sync.RWMutex

	users        []models.User
	jobs         []models.Job // newest-first
	applications []models.Application
	resumes      []models.Resume
}

func NewStore() *repositories.Store {
	d := &db{}
	return &repositories.Store{
		Users:        &userRepo{db: d},
		Jobs:         &jobRepo{db: d},
		Applications: &applicationRepo{db: d},
		Resumes:      &resumeRepo{db: d},
	}
}

func cloneJob(j models.Job) models.Job {
	if j.Requirements != nil {
		j.Requirements = append(j.Requirements[:0:0], j.Requirements...)
	}
	return j
}

func cloneApplication(a models.Application) models.Application {
	if a.Job != nil {
		j := cloneJob(*a.Job)
		a.Job = &j
	}
	return a
}
