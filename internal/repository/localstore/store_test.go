package localstore_test

import (
	"path/filepath"
	"testing"

	"go-careerhub-backend/internal/repository/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := localstore.Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("savedJobs:student-1", []string{"job-1", "job-3"}))

	var ids []string
	require.NoError(t, s.Get("savedJobs:student-1", &ids))
	assert.Equal(t, []string{"job-1", "job-3"}, ids)
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("user", map[string]string{"id": "student-1"}))

	// simulate process restart
	reopened, err := localstore.Open(path)
	require.NoError(t, err)

	var user map[string]string
	require.NoError(t, reopened.Get("user", &user))
	assert.Equal(t, "student-1", user["id"])
}

func TestMissingKey(t *testing.T) {
	s, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	var out []string
	assert.ErrorIs(t, s.Get("savedEvents", &out), localstore.ErrNoValue)
	assert.False(t, s.Has("savedEvents"))
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := localstore.Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("user", "x"))
	require.NoError(t, s.Delete("user"))
	assert.False(t, s.Has("user"))

	// absent key is a no-op
	require.NoError(t, s.Delete("user"))

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	assert.False(t, reopened.Has("user"))
}
