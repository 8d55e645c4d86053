package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/utils"
	"gorm.io/gorm"
)

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) repositories.JobRepository {
	return &jobRepo{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	err := r.db.WithContext(ctx).Create(j).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) List(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{})

	if f.Search != "" {
		p := containsPattern(f.Search)
		q = q.Where("(title ILIKE ? OR company ILIKE ? OR description ILIKE ?)", p, p, p)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", containsPattern(f.Location))
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}
	if f.Featured {
		q = q.Where("featured = ?", true)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []models.Job
	err := q.Order("seq DESC").Find(&rows).Error
	return rows, err
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	var rows []models.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("seq DESC").
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) Update(ctx context.Context, j *models.Job) error {
	res := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", j.ID).
		Updates(map[string]any{
			"title":        j.Title,
			"company":      j.Company,
			"company_logo": j.CompanyLogo,
			"description":  j.Description,
			"requirements": j.Requirements,
			"location":     j.Location,
			"salary":       j.Salary,
			"job_type":     j.JobType,
			"featured":     j.Featured,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
