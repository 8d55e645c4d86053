package memory

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

type jobRepo struct {
	db *db
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.indexOf(j.ID) >= 0 {
		return utils.ErrConflict
	}
	jobs := make([]models.Job, 0, len(r.db.jobs)+1)
	jobs = append(jobs, cloneJob(*j))
	r.db.jobs = append(jobs, r.db.jobs...)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, utils.ErrNotFound
	}
	j := cloneJob(r.db.jobs[i])
	return &j, nil
}

func (r *jobRepo) List(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := f.Apply(r.db.jobs)
	for i := range out {
		out[i] = cloneJob(out[i])
	}
	return out, nil
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []models.Job
	for _, j := range r.db.jobs {
		if j.EmployerID == employerID {
			out = append(out, cloneJob(j))
		}
	}
	return out, nil
}

func (r *jobRepo) Update(ctx context.Context, j *models.Job) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(j.ID)
	if i < 0 {
		return utils.ErrNotFound
	}
	r.db.jobs[i] = cloneJob(*j)
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return utils.ErrNotFound
	}
	r.db.jobs = append(r.db.jobs[:i:i], r.db.jobs[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (r *jobRepo) indexOf(id string) int {
	for i := range r.db.jobs {
		if r.db.jobs[i].ID == id {
			return i
		}
	}
	return -1
}
