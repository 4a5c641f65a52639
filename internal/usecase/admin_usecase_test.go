package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/repository/memory"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	adminUC   domain.AdminUsecase
	actorRepo domain.ActorRepository
	jobRepo   domain.JobRepository
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	ctx := context.Background()

	actorRepo := memory.NewActorRepository()
	for _, a := range []domain.Actor{
		{ID: "admin-1", Name: "G6 Admin", Email: "g6@gmail.com", Role: domain.RoleAdmin, Status: domain.StatusActive},
		{ID: "student-1", Name: "Student User", Email: "student@demo.com", Role: domain.RoleStudent, Status: domain.StatusActive},
		{ID: "student-2", Name: "Maya Chen", Email: "maya@demo.com", Role: domain.RoleStudent, Status: domain.StatusPending},
	} {
		actor := a
		require.NoError(t, actorRepo.Create(ctx, &actor))
	}

	jobRepo := memory.NewJobRepository()
	for _, j := range []domain.Job{
		{ID: "job-1", Title: "Backend Intern", CompanyName: "Demo Company", PostedDate: time.Now().AddDate(0, 0, -3)},
		{ID: "job-2", Title: "Data Analyst", CompanyName: "Initech", PostedDate: time.Now().AddDate(0, 0, -45)},
	} {
		job := j
		require.NoError(t, jobRepo.Create(ctx, &job))
	}

	adminUC := usecase.NewAdminUsecase(actorRepo, memory.NewCompanyRepository(), jobRepo,
		memory.NewEventRepository(), memory.NewCourseRepository(), 0)

	return &adminFixture{adminUC: adminUC, actorRepo: actorRepo, jobRepo: jobRepo}
}

func adminCtx() context.Context {
	return domain.WithActor(context.Background(), &domain.Actor{
		ID: "admin-1", Role: domain.RoleAdmin, Status: domain.StatusActive,
	})
}

func TestGetStats(t *testing.T) {
	f := newAdminFixture(t)

	stats, err := f.adminUC.GetStats(adminCtx())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, 2, stats.TotalJobs)
	assert.Equal(t, 1, stats.RecentJobs) // only the 3-day-old posting
	assert.InDelta(t, 12.5, stats.UserGrowth, 0.001)
	assert.InDelta(t, 8.3, stats.JobGrowth, 0.001)
}

func TestStatsRequireAdmin(t *testing.T) {
	f := newAdminFixture(t)
	ctx := domain.WithActor(context.Background(), &domain.Actor{ID: "student-1", Role: domain.RoleStudent})

	_, err := f.adminUC.GetStats(ctx)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}

func TestBulkActivateUsersOnly(t *testing.T) {
	f := newAdminFixture(t)

	t.Run("activates pending users", func(t *testing.T) {
		result, err := f.adminUC.ApplyBulk(adminCtx(), domain.KindUser, domain.BulkActivate, []string{"student-2"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)

		actor, err := f.actorRepo.GetByID(context.Background(), "student-2")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, actor.Status)
	})

	t.Run("no-op on other tabs", func(t *testing.T) {
		result, err := f.adminUC.ApplyBulk(adminCtx(), domain.KindJob, domain.BulkActivate, []string{"job-1", "job-2"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Succeeded)

		jobs, err := f.jobRepo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestBulkDeleteExactSelection(t *testing.T) {
	f := newAdminFixture(t)

	result, err := f.adminUC.ApplyBulk(adminCtx(), domain.KindJob, domain.BulkDelete, []string{"job-2", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)

	jobs, err := f.jobRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.adminUC.CreateUser(adminCtx(), domain.CreateUserRequest{
		Name: "Duplicate", Email: "student@demo.com", Role: "student",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateUserStatus(t *testing.T) {
	f := newAdminFixture(t)

	actor, err := f.adminUC.UpdateUser(adminCtx(), "student-1", domain.UpdateUserRequest{Status: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, actor.Status)
}

func TestExportUsers(t *testing.T) {
	f := newAdminFixture(t)

	out, err := f.adminUC.Export(adminCtx(), domain.KindUser, domain.ListFilter{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Filename, "users-export-"))
	assert.True(t, strings.HasSuffix(out.Filename, ".csv"))
	assert.Equal(t, []string{"ID", "Name", "Email", "Role", "Status"}, out.Header)
	assert.Len(t, out.Rows, 3)
}

func TestExportAppliesFilter(t *testing.T) {
	f := newAdminFixture(t)

	out, err := f.adminUC.Export(adminCtx(), domain.KindUser, domain.ListFilter{Query: "maya"})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "student-2", out.Rows[0][0])
}
