package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/permission"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedFixture(t *testing.T) domain.SavedUsecase {
	t.Helper()
	state, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return usecase.NewSavedUsecase(permission.NewChecker(), state)
}

func studentCtx(id string) context.Context {
	return domain.WithActor(context.Background(), &domain.Actor{
		ID: id, Role: domain.RoleStudent, Status: domain.StatusActive,
	})
}

func TestToggleFlipsMembership(t *testing.T) {
	uc := newSavedFixture(t)
	ctx := studentCtx("student-1")

	saved, err := uc.Toggle(ctx, domain.SavedJobs, "job-1")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, uc.IsSaved(ctx, domain.SavedJobs, "job-1"))

	// Toggling again removes it, an exact inverse.
	saved, err = uc.Toggle(ctx, domain.SavedJobs, "job-1")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, uc.IsSaved(ctx, domain.SavedJobs, "job-1"))

	ids, err := uc.List(ctx, domain.SavedJobs)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleWithoutActorDenied(t *testing.T) {
	uc := newSavedFixture(t)

	_, err := uc.Toggle(context.Background(), domain.SavedJobs, "job-1")
	assert.Error(t, err)
	assert.False(t, uc.IsSaved(context.Background(), domain.SavedJobs, "job-1"))
}

func TestSavedSetsScopedPerActor(t *testing.T) {
	uc := newSavedFixture(t)

	_, err := uc.Toggle(studentCtx("student-1"), domain.SavedEvents, "event-1")
	require.NoError(t, err)

	assert.True(t, uc.IsSaved(studentCtx("student-1"), domain.SavedEvents, "event-1"))
	assert.False(t, uc.IsSaved(studentCtx("student-2"), domain.SavedEvents, "event-1"))
}

func TestLegacySharedSetClaimedByFirstActor(t *testing.T) {
	state, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	// Older state files hold one shared set per kind, without an actor id.
	require.NoError(t, state.Set("savedJobs", []string{"job-9"}))

	uc := usecase.NewSavedUsecase(permission.NewChecker(), state)

	ids, err := uc.List(studentCtx("student-1"), domain.SavedJobs)
	require.NoError(t, err)
	assert.Equal(t, []string{"job-9"}, ids)

	// The first reader owns the migrated set; the legacy key is gone and
	// everyone else starts empty.
	assert.False(t, state.Has("savedJobs"))
	assert.True(t, state.Has("savedJobs:student-1"))

	ids, err = uc.List(studentCtx("student-2"), domain.SavedJobs)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, uc.IsSaved(studentCtx("student-1"), domain.SavedJobs, "job-9"))
}

func TestSavedSetSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	state, err := localstore.Open(path)
	require.NoError(t, err)

	uc := usecase.NewSavedUsecase(permission.NewChecker(), state)
	_, err = uc.Toggle(studentCtx("student-1"), domain.SavedCompanies, "company-1")
	require.NoError(t, err)

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	uc2 := usecase.NewSavedUsecase(permission.NewChecker(), reopened)

	assert.True(t, uc2.IsSaved(studentCtx("student-1"), domain.SavedCompanies, "company-1"))
}
