package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
	"github.com/yoockh/jobboard/internal/repositories/memory"
	"github.com/yoockh/jobboard/internal/storage"
	"github.com/yoockh/jobboard/internal/utils"
)

type testEnv struct {
	store        *repositories.Store
	sessions     SessionService
	auth         AuthService
	jobs         JobService
	applications ApplicationService
	employer     EmployerService
	resumes      ResumeService
	uploads      *storage.MemoryUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	latency := NewLatency(false)
	sessions := NewSessionService(memory.NewSessionRepo(), "test-secret", time.Hour)
	uploads := storage.NewMemoryUploader("")

	return &testEnv{
		store:        store,
		sessions:     sessions,
		auth:         NewAuthService(store.Users, sessions, latency, log, AuthOptions{}),
		jobs:         NewJobService(store.Jobs, latency, log),
		applications: NewApplicationService(store.Jobs, store.Applications, latency, log),
		employer:     NewEmployerService(store.Jobs, store.Applications, latency),
		resumes:      NewResumeService(store.Resumes, uploads, log),
		uploads:      uploads,
	}
}

func (e *testEnv) register(t *testing.T, email, name string, role models.UserRole) *models.User {
	t.Helper()
	res, err := e.auth.Register(context.Background(), RegisterInput{Email: email, Name: name, Role: role})
	require.NoError(t, err)
	return res.User
}

func (e *testEnv) postJob(t *testing.T, employer *models.User, title string) *models.Job {
	t.Helper()
	job, err := e.jobs.Create(context.Background(), employer, models.JobInput{
		Title:       title,
		Description: title + " wanted",
		Location:    "Remote",
		Salary:      "$1",
		JobType:     models.JobTypeFullTime,
	})
	require.NoError(t, err)
	return job
}

func requireCode(t *testing.T, err error, code utils.Code) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, utils.IsCode(err, code), "want %s, got %v", code, err)
}
