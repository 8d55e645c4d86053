package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

func TestCreateJobPrependsAndDefaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := env.register(t, "hr@acme.test", "Acme", models.RoleEmployer)

	first := env.postJob(t, acme, "Waiter")
	job, err := env.jobs.Create(ctx, acme, models.JobInput{
		Title:        "Cook",
		Requirements: []string{"", "  "},
		JobType:      models.JobTypeFullTime,
	})
	require.NoError(t, err)

	assert.Equal(t, acme.ID, job.EmployerID)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, models.DefaultAvatar, job.CompanyLogo)
	assert.Equal(t, []string{models.NoRequirements}, []string(job.Requirements))
	assert.False(t, job.PostedAt.IsZero())

	all, err := env.jobs.List(ctx, models.JobFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, job.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestCreateJobRequiresEmployer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	jane := env.register(t, "jane@example.com", "Jane", models.RoleJobSeeker)

	_, err := env.jobs.Create(ctx, jane, models.JobInput{Title: "Cook", JobType: models.JobTypeFullTime})
	requireCode(t, err, utils.CodeUnauthorized)

	_, err = env.jobs.Create(ctx, nil, models.JobInput{Title: "Cook", JobType: models.JobTypeFullTime})
	requireCode(t, err, utils.CodeUnauthorized)

	all, err := env.jobs.List(ctx, models.JobFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateJobValidates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := env.register(t, "hr@acme.test", "Acme", models.RoleEmployer)

	_, err := env.jobs.Create(ctx, acme, models.JobInput{Title: " ", JobType: models.JobTypeFullTime})
	requireCode(t, err, utils.CodeInvalidArgument)

	_, err = env.jobs.Create(ctx, acme, models.JobInput{Title: "Cook", JobType: "internship"})
	requireCode(t, err, utils.CodeInvalidArgument)
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := env.register(t, "hr@acme.test", "Acme", models.RoleEmployer)
	other := env.register(t, "hr@other.test", "Other", models.RoleEmployer)
	jane := env.register(t, "jane@example.com", "Jane", models.RoleJobSeeker)
	job := env.postJob(t, acme, "Cook")

	title := "Head Cook"
	patch := models.JobPatch{Title: &title}

	_, err := env.jobs.Update(ctx, jane, job.ID, patch)
	requireCode(t, err, utils.CodeUnauthorized)

	_, err = env.jobs.Update(ctx, other, job.ID, patch)
	requireCode(t, err, utils.CodeForbidden)

	unchanged, err := env.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cook", unchanged.Title)

	_, err = env.jobs.Update(ctx, acme, "missing", patch)
	requireCode(t, err, utils.CodeNotFound)

	updated, err := env.jobs.Update(ctx, acme, job.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Head Cook", updated.Title)
	assert.Equal(t, acme.ID, updated.EmployerID)
	assert.Equal(t, job.PostedAt, updated.PostedAt)
	assert.Equal(t, job.Salary, updated.Salary)

	bad := models.JobType("gig")
	_, err = env.jobs.Update(ctx, acme, job.ID, models.JobPatch{JobType: &bad})
	requireCode(t, err, utils.CodeInvalidArgument)
}

func TestUpdateJobChecksOwnershipBeforePatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := env.register(t, "hr@acme.test", "Acme", models.RoleEmployer)
	other := env.register(t, "hr@other.test", "Other", models.RoleEmployer)
	job := env.postJob(t, acme, "Cook")

	bad := models.JobType("gig")
	empty := " "

	_, err := env.jobs.Update(ctx, other, job.ID, models.JobPatch{JobType: &bad})
	requireCode(t, err, utils.CodeForbidden)

	_, err = env.jobs.Update(ctx, other, job.ID, models.JobPatch{Title: &empty})
	requireCode(t, err, utils.CodeForbidden)

	_, err = env.jobs.Update(ctx, acme, "missing", models.JobPatch{JobType: &bad})
	requireCode(t, err, utils.CodeNotFound)

	_, err = env.jobs.Update(ctx, acme, job.ID, models.JobPatch{Title: &empty})
	requireCode(t, err, utils.CodeInvalidArgument)
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := env.register(t, "hr@acme.test", "Acme", models.RoleEmployer)
	other := env.register(t, "hr@other.test", "Other", models.RoleEmployer)
	jane := env.register(t, "jane@example.com", "Jane", models.RoleJobSeeker)
	job := env.postJob(t, acme, "Cook")

	_, err := env.applications.Apply(ctx, jane, job.ID, models.ApplicationInput{})
	require.NoError(t, err)

	_, err = env.jobs.Delete(ctx, jane, job.ID)
	requireCode(t, err, utils.CodeUnauthorized)

	_, err = env.jobs.Delete(ctx, other, job.ID)
	requireCode(t, err, utils.CodeForbidden)
	_, err = env.jobs.Get(ctx, job.ID)
	require.NoError(t, err)

	ok, err := env.jobs.Delete(ctx, acme, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = env.jobs.Delete(ctx, acme, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = env.jobs.Get(ctx, job.ID)
	requireCode(t, err, utils.CodeNotFound)

	// applications survive their job and lose the annotation
	mine, err := env.applications.ListMine(ctx, jane)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Nil(t, mine[0].Job)
}

func TestListJobsFilters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	acme := env.register(t, "hr@acme.test", "Acme", models.RoleEmployer)

	mk := func(in models.JobInput) {
		_, err := env.jobs.Create(ctx, acme, in)
		require.NoError(t, err)
	}
	mk(models.JobInput{Title: "Go Developer", Company: "Gophers", Location: "Berlin", JobType: models.JobTypeFullTime})
	mk(models.JobInput{Title: "Cook", Description: "Kitchen in Berlin", Location: "Remote", JobType: models.JobTypeContract})
	mk(models.JobInput{Title: "Designer", Location: "berlin (hybrid)", JobType: models.JobTypePartTime, Featured: true})

	titles := func(f models.JobFilter) []string {
		jobs, err := env.jobs.List(ctx, f)
		require.NoError(t, err)
		out := []string{}
		for _, j := range jobs {
			out = append(out, j.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Designer", "Cook", "Go Developer"}, titles(models.JobFilter{}))
	assert.Equal(t, []string{"Cook"}, titles(models.JobFilter{Search: "KITCHEN"}))
	assert.Equal(t, []string{"Designer", "Go Developer"}, titles(models.JobFilter{Location: "Berlin"}))
	assert.Equal(t, []string{"Go Developer"}, titles(models.JobFilter{Location: "berlin", JobType: models.JobTypeFullTime}))
	assert.Equal(t, []string{"Designer"}, titles(models.JobFilter{Featured: true}))
	assert.Equal(t, []string{}, titles(models.JobFilter{JobType: "gig"}))
	assert.Equal(t, []string{"Designer"}, titles(models.JobFilter{Limit: 1}))
}

func TestGetJobNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.jobs.Get(context.Background(), "nope")
	requireCode(t, err, utils.CodeNotFound)
}
