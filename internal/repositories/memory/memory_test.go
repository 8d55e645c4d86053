package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

func TestJobRepoPrependsAndFilters(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Jobs.Create(ctx, &models.Job{ID: "a", Title: "Old", EmployerID: "e1", JobType: models.JobTypeFullTime}))
	require.NoError(t, store.Jobs.Create(ctx, &models.Job{ID: "b", Title: "New", EmployerID: "e2", JobType: models.JobTypeRemote}))

	all, err := store.Jobs.List(ctx, models.JobFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)

	remote, err := store.Jobs.List(ctx, models.JobFilter{JobType: models.JobTypeRemote})
	require.NoError(t, err)
	require.Len(t, remote, 1)
	assert.Equal(t, "b", remote[0].ID)

	mine, err := store.Jobs.ListByEmployer(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].ID)

	assert.ErrorIs(t, store.Jobs.Create(ctx, &models.Job{ID: "a"}), utils.ErrConflict)
}

func TestJobRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Jobs.Create(ctx, &models.Job{ID: "a", Title: "Cook", Requirements: []string{"knives"}}))

	j, err := store.Jobs.GetByID(ctx, "a")
	require.NoError(t, err)
	j.Title = "changed"
	j.Requirements[0] = "changed"

	again, err := store.Jobs.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Cook", again.Title)
	assert.Equal(t, "knives", again.Requirements[0])
}

func TestJobRepoUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Jobs.Create(ctx, &models.Job{ID: "a", Title: "Cook"}))
	require.NoError(t, store.Jobs.Create(ctx, &models.Job{ID: "b", Title: "Baker"}))

	require.NoError(t, store.Jobs.Update(ctx, &models.Job{ID: "a", Title: "Chef"}))
	j, err := store.Jobs.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Chef", j.Title)

	assert.ErrorIs(t, store.Jobs.Update(ctx, &models.Job{ID: "zzz"}), utils.ErrNotFound)

	require.NoError(t, store.Jobs.Delete(ctx, "b"))
	assert.ErrorIs(t, store.Jobs.Delete(ctx, "b"), utils.ErrNotFound)

	all, err := store.Jobs.List(ctx, models.JobFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].ID)
}

func TestApplicationRepoUniquePair(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Applications.Create(ctx, &models.Application{ID: "1", UserID: "u", JobID: "j", Status: models.StatusPending}))
	err := store.Applications.Create(ctx, &models.Application{ID: "2", UserID: "u", JobID: "j", Status: models.StatusPending})
	assert.ErrorIs(t, err, utils.ErrConflict)

	require.NoError(t, store.Applications.Create(ctx, &models.Application{ID: "3", UserID: "u", JobID: "k", Status: models.StatusPending}))

	mine, err := store.Applications.ListByUser(ctx, "u")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	forJobs, err := store.Applications.ListByJobs(ctx, "k", "nope")
	require.NoError(t, err)
	require.Len(t, forJobs, 1)
	assert.Equal(t, "3", forJobs[0].ID)

	require.NoError(t, store.Applications.UpdateStatus(ctx, "1", models.StatusAccepted))
	a, err := store.Applications.FindByUserAndJob(ctx, "u", "j")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, a.Status)

	assert.ErrorIs(t, store.Applications.UpdateStatus(ctx, "missing", models.StatusAccepted), utils.ErrNotFound)
	_, err = store.Applications.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUserRepoFirstEmailWins(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Users.Create(ctx, &models.User{ID: "1", Email: "dup@example.com", Name: "First"}))
	require.NoError(t, store.Users.Create(ctx, &models.User{ID: "2", Email: "dup@example.com", Name: "Second"}))

	u, err := store.Users.GetByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First", u.Name)

	_, err = store.Users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestResumeRepoLatest(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Now()

	require.NoError(t, store.Resumes.Insert(ctx, &models.Resume{ID: "old", UserID: "u", UploadedAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Resumes.Insert(ctx, &models.Resume{ID: "new", UserID: "u", UploadedAt: now}))

	r, err := store.Resumes.LatestByUser(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "new", r.ID)

	_, err = store.Resumes.LatestByUser(ctx, "other")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSessionRepoExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo()

	require.NoError(t, repo.Create(ctx, &models.Session{SessionID: "live", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.Session{SessionID: "dead", ExpiresAt: time.Now().Add(-time.Second)}))

	_, err := repo.GetBySessionID(ctx, "live")
	assert.NoError(t, err)
	_, err = repo.GetBySessionID(ctx, "dead")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "live"))
	_, err = repo.GetBySessionID(ctx, "live")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSessionRepoPurgeExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &models.Session{SessionID: "a", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &models.Session{SessionID: "b", ExpiresAt: now}))
	require.NoError(t, repo.Create(ctx, &models.Session{SessionID: "c", ExpiresAt: now.Add(time.Minute)}))

	n, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.GetBySessionID(ctx, "c")
	assert.NoError(t, err)
}
