package memory

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

type resumeRepo struct {
	db *db
}

func (r *resumeRepo) Insert(ctx context.Context, res *models.Resume) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.resumes = append(r.db.resumes, *res)
	return nil
}

func (r *resumeRepo) LatestByUser(ctx context.Context, userID string) (*models.Resume, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var latest *models.Resume
	for i := range r.db.resumes {
		res := r.db.resumes[i]
		if res.UserID != userID {
			continue
		}
		if latest == nil || !res.UploadedAt.Before(latest.UploadedAt) {
			latest = &res
		}
	}
	if latest == nil {
		return nil, utils.ErrNotFound
	}
	return latest, nil
}
