package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/internal/repository/memory"
	"go-careerhub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (domain.ActorRepository, *localstore.Store) {
	t.Helper()
	actorRepo := memory.NewActorRepository()
	require.NoError(t, actorRepo.Create(context.Background(), &domain.Actor{
		ID: "student-1", Name: "Student User", Email: "student@demo.com",
		Role: domain.RoleStudent, Status: domain.StatusActive,
	}))
	require.NoError(t, actorRepo.Create(context.Background(), &domain.Actor{
		ID: "student-2", Name: "Maya Chen", Email: "maya@demo.com",
		Role: domain.RoleStudent, Status: domain.StatusPending,
	}))

	state, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return actorRepo, state
}

func TestLoginKnownEmail(t *testing.T) {
	actorRepo, state := newSessionFixture(t)
	uc := usecase.NewSessionUsecase(actorRepo, state)

	// Password is never checked in the demo login.
	actor, err := uc.Login(context.Background(), "student@demo.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "student-1", actor.ID)

	current := uc.Current(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, "student-1", current.ID)
}

func TestLoginUnknownEmailCreatesStudent(t *testing.T) {
	actorRepo, state := newSessionFixture(t)
	uc := usecase.NewSessionUsecase(actorRepo, state)

	actor, err := uc.Login(context.Background(), "newcomer@uni.edu", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, actor.Role)
	assert.Equal(t, domain.StatusActive, actor.Status)
	assert.NotEmpty(t, actor.ID)

	stored, err := actorRepo.GetByEmail(context.Background(), "newcomer@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, actor.ID, stored.ID)
}

func TestLoginInactiveAccountDenied(t *testing.T) {
	actorRepo, state := newSessionFixture(t)
	uc := usecase.NewSessionUsecase(actorRepo, state)

	_, err := uc.Login(context.Background(), "maya@demo.com", "")
	assert.Error(t, err)
	assert.Nil(t, uc.Current(context.Background()))
}

func TestSessionRestoredFromState(t *testing.T) {
	actorRepo, state := newSessionFixture(t)
	uc := usecase.NewSessionUsecase(actorRepo, state)

	_, err := uc.Login(context.Background(), "student@demo.com", "")
	require.NoError(t, err)

	// A fresh instance over the same state file picks up the session.
	restored := usecase.NewSessionUsecase(actorRepo, state)
	current := restored.Current(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, "student-1", current.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	actorRepo, state := newSessionFixture(t)
	uc := usecase.NewSessionUsecase(actorRepo, state)

	_, err := uc.Login(context.Background(), "student@demo.com", "")
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background()))

	assert.Nil(t, uc.Current(context.Background()))
	assert.Nil(t, usecase.NewSessionUsecase(actorRepo, state).Current(context.Background()))
}

func TestUpdateProfile(t *testing.T) {
	actorRepo, state := newSessionFixture(t)
	uc := usecase.NewSessionUsecase(actorRepo, state)

	_, err := uc.Login(context.Background(), "student@demo.com", "")
	require.NoError(t, err)

	actor, err := uc.UpdateProfile(context.Background(), domain.ProfilePatch{
		Name: "Student Renamed", Bio: "Looking for backend internships", Location: "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Student Renamed", actor.Name)
	assert.Equal(t, "Berlin", actor.Location)

	stored, err := actorRepo.GetByID(context.Background(), "student-1")
	require.NoError(t, err)
	assert.Equal(t, "Student Renamed", stored.Name)
}
