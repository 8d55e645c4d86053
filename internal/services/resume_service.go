package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/storage"
	"github.com/yoockh/jobboard/internal/utils"
)

type ResumeUpload struct {
	FileName string
	FileSize int
	MimeType string
	Body     io.Reader
}

type ResumeService interface {
	// Upload stores a job seeker's resume; the returned URL is meant to be
	// sent back as an application's resume_url.
	Upload(ctx context.Context, actor *models.User, in ResumeUpload) (*models.Resume, error)
	Latest(ctx context.Context, actor *models.User) (*models.Resume, error)
}

type resumeService struct {
	repo     repositories.ResumeRepository
	uploader storage.Uploader
	log      logrus.FieldLogger
}

func NewResumeService(repo repositories.ResumeRepository, uploader storage.Uploader, log logrus.FieldLogger) ResumeService {
	return &resumeService{repo: repo, uploader: uploader, log: log}
}

func (s *resumeService) Upload(ctx context.Context, actor *models.User, in ResumeUpload) (*models.Resume, error) {
	const op = "ResumeService.Upload"

	if err := requireJobSeeker(op, actor, "only job seekers can upload resumes"); err != nil {
		return nil, err
	}
	if in.Body == nil || in.FileName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "file is required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	ext := strings.ToLower(filepath.Ext(in.FileName))
	objectName := "resumes/" + actor.ID + "/" + uuid.NewString() + ext

	url, err := s.uploader.Upload(ctx, objectName, in.MimeType, in.Body)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.Resume{
		ID:         uuid.NewString(),
		UserID:     actor.ID,
		FileName:   in.FileName,
		URL:        url,
		FileSize:   in.FileSize,
		MimeType:   in.MimeType,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume metadata", err)
	}

	s.log.WithFields(logrus.Fields{"resume_id": row.ID, "user_id": actor.ID}).Info("resume uploaded")
	return row, nil
}

func (s *resumeService) Latest(ctx context.Context, actor *models.User) (*models.Resume, error) {
	const op = "ResumeService.Latest"

	if err := requireJobSeeker(op, actor, "only job seekers have resumes"); err != nil {
		return nil, err
	}
	r, err := s.repo.LatestByUser(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no resume uploaded", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get resume", err)
	}
	return r, nil
}
