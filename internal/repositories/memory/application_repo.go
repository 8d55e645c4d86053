package memory

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

type applicationRepo struct {
	db *db
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.applications {
		if existing.ID == a.ID || (existing.UserID == a.UserID && existing.JobID == a.JobID) {
			return utils.ErrConflict
		}
	}
	row := cloneApplication(*a)
	row.Job = nil
	r.db.applications = append(r.db.applications, row)
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.applications {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *applicationRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.Application, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.applications {
		if a.UserID == userID && a.JobID == jobID {
			return &a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []models.Application
	for _, a := range r.db.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *applicationRepo) ListByJobs(ctx context.Context, jobIDs ...string) ([]models.Application, error) {
	want := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		want[id] = struct{}{}
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []models.Application
	for _, a := range r.db.applications {
		if _, ok := want[a.JobID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.applications {
		if r.db.applications[i].ID == id {
			r.db.applications[i].Status = status
			return nil
		}
	}
	return utils.ErrNotFound
}
