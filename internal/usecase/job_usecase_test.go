package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/permission"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/internal/repository/memory"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	jobUC     domain.JobUsecase
	jobRepo   domain.JobRepository
	actorRepo domain.ActorRepository
	sessionUC *usecase.SessionUsecase
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()

	actorRepo := memory.NewActorRepository()
	require.NoError(t, actorRepo.Create(context.Background(), &domain.Actor{
		ID: "employer-1", Name: "Employer User", Email: "employer@demo.com",
		Role: domain.RoleEmployer, Status: domain.StatusActive,
		CompanyID: "company-1", ManagedItems: &domain.ManagedItems{JobIDs: []string{"job-1"}},
	}))

	state, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	jobRepo := memory.NewJobRepository()
	sessionUC := usecase.NewSessionUsecase(actorRepo, state)
	jobUC := usecase.NewJobUsecase(jobRepo, permission.NewChecker(), sessionUC, validator.New(), 0)

	return &jobFixture{jobUC: jobUC, jobRepo: jobRepo, actorRepo: actorRepo, sessionUC: sessionUC}
}

func validJobDraft() domain.JobDraft {
	return domain.JobDraft{
		Title:        "Backend Intern",
		CompanyID:    "company-1",
		CompanyName:  "Demo Company",
		Location:     "Berlin",
		Type:         "internship",
		Description:  "We are hiring a backend engineering intern to join our platform team for the summer.",
		Requirements: []string{"Go basics"},
		Salary:       "1500 EUR/month",
		Deadline:     "2026-12-31",
		Skills:       []string{"Go"},
	}
}

func employerCtx(t *testing.T, f *jobFixture) context.Context {
	t.Helper()
	actor, err := f.sessionUC.Login(context.Background(), "employer@demo.com", "")
	require.NoError(t, err)
	return domain.WithActor(context.Background(), actor)
}

func TestCreateJobValidDraft(t *testing.T) {
	f := newJobFixture(t)
	ctx := employerCtx(t, f)

	job, err := f.jobUC.CreateJob(ctx, validJobDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.False(t, job.PostedDate.IsZero())
	assert.Equal(t, domain.JobInternship, job.Type)

	// Ownership follows creation: the employer can now edit the new job.
	current := f.sessionUC.Current(ctx)
	assert.True(t, current.ManagesJob(job.ID))
}

func TestCreateJobThinDescriptionRejected(t *testing.T) {
	f := newJobFixture(t)
	ctx := employerCtx(t, f)

	draft := validJobDraft()
	draft.Description = "We are hiring a backend engineering intern." // under 50 chars

	_, err := f.jobUC.CreateJob(ctx, draft)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	fields, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "description")
}

func TestCreateJobStudentDenied(t *testing.T) {
	f := newJobFixture(t)
	ctx := domain.WithActor(context.Background(), &domain.Actor{
		ID: "student-1", Role: domain.RoleStudent, Status: domain.StatusActive,
	})

	_, err := f.jobUC.CreateJob(ctx, validJobDraft())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)

	// Denied before any state change
	jobs, listErr := f.jobRepo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, jobs)
}

func TestUpdateJobScopedToManaged(t *testing.T) {
	f := newJobFixture(t)
	ctx := employerCtx(t, f)

	other := &domain.Job{Title: "Data Analyst", CompanyName: "Initech", Location: "Remote", Type: domain.JobFullTime}
	require.NoError(t, f.jobRepo.Create(context.Background(), other))

	_, err := f.jobUC.UpdateJob(ctx, other.ID, validJobDraft())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}

func TestDeleteJobNotFound(t *testing.T) {
	f := newJobFixture(t)
	ctx := domain.WithActor(context.Background(), &domain.Actor{ID: "admin-1", Role: domain.RoleAdmin})

	err := f.jobUC.DeleteJob(ctx, "missing")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
