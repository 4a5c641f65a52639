package usecase_test

import (
	"context"
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/repository/memory"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture(t *testing.T) domain.ApplicationUsecase {
	t.Helper()
	ctx := context.Background()

	jobRepo := memory.NewJobRepository()
	require.NoError(t, jobRepo.Create(ctx, &domain.Job{ID: "job-1", Title: "Backend Intern", CompanyName: "Demo Company"}))

	resumeRepo := memory.NewResumeRepository()
	require.NoError(t, resumeRepo.Create(ctx, &domain.Resume{
		ID: "resume-1", OwnerID: "student-1", Title: "My Resume", Template: "modern",
	}))
	require.NoError(t, resumeRepo.Create(ctx, &domain.Resume{
		ID: "resume-2", OwnerID: "student-2", Title: "Other Resume", Template: "modern",
	}))

	return usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo, resumeRepo, 0)
}

func TestApplyAndList(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := studentCtx("student-1")

	app, err := uc.Apply(ctx, "job-1", "resume-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApplied, app.Status)
	assert.False(t, app.AppliedDate.IsZero())

	apps, err := uc.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "job-1", apps[0].JobID)
}

func TestApplyDuplicateRejected(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := studentCtx("student-1")

	_, err := uc.Apply(ctx, "job-1", "resume-1")
	require.NoError(t, err)

	_, err = uc.Apply(ctx, "job-1", "resume-1")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestApplyWithForeignResumeDenied(t *testing.T) {
	uc := newApplicationFixture(t)

	_, err := uc.Apply(studentCtx("student-1"), "job-1", "resume-2")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}

func TestApplyEmployerDenied(t *testing.T) {
	uc := newApplicationFixture(t)
	ctx := domain.WithActor(context.Background(), &domain.Actor{
		ID: "employer-1", Role: domain.RoleEmployer, Status: domain.StatusActive,
	})

	_, err := uc.Apply(ctx, "job-1", "resume-1")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}

func TestApplyMissingJob(t *testing.T) {
	uc := newApplicationFixture(t)

	_, err := uc.Apply(studentCtx("student-1"), "job-9", "resume-1")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
