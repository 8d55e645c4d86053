package postgres

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"gorm.io/gorm"
)

func NewStore(db *gorm.DB) *repositories.Store {
	return &repositories.Store{
		Users:        NewUserRepo(db),
		Jobs:         NewJobRepo(db),
		Applications: NewApplicationRepo(db),
		Resumes:      NewResumeRepo(db),
	}
}

// Migrate creates or updates the job board tables. Applications are not
// removed when their job is deleted, so there is no foreign key on job_id.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Resume{},
	)
}
