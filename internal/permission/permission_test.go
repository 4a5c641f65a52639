package permission_test

import (
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/permission"

	"github.com/stretchr/testify/assert"
)

func TestCheckNoActor(t *testing.T) {
	c := permission.NewChecker()

	assert.False(t, c.Check(nil, domain.ActionRead, domain.KindJob, "j1"))
	assert.False(t, c.Check(nil, domain.ActionDelete, domain.KindCompany, "c1"))
	assert.False(t, c.Check(nil, "frobnicate", "widget", ""))
}

func TestCheckAdminUnconditional(t *testing.T) {
	c := permission.NewChecker()
	admin := &domain.Actor{ID: "a1", Role: domain.RoleAdmin}

	assert.True(t, c.Check(admin, domain.ActionDelete, domain.KindCompany, "anything"))
	assert.True(t, c.Check(admin, domain.ActionEdit, domain.KindUser, "u9"))
	// Even unknown combinations pass for admin
	assert.True(t, c.Check(admin, "frobnicate", "widget", ""))
}

func TestCheckEmployerScoping(t *testing.T) {
	c := permission.NewChecker()
	employer := &domain.Actor{
		ID:        "e1",
		Role:      domain.RoleEmployer,
		CompanyID: "c1",
		ManagedItems: &domain.ManagedItems{
			JobIDs:   []string{"j1"},
			EventIDs: []string{"ev1"},
		},
	}

	t.Run("create limited to company/event/job", func(t *testing.T) {
		assert.True(t, c.Check(employer, domain.ActionCreate, domain.KindJob, ""))
		assert.True(t, c.Check(employer, domain.ActionCreate, domain.KindEvent, ""))
		assert.True(t, c.Check(employer, domain.ActionCreate, domain.KindCompany, ""))
		assert.False(t, c.Check(employer, domain.ActionCreate, domain.KindCourse, ""))
		assert.False(t, c.Check(employer, domain.ActionCreate, domain.KindUser, ""))
	})

	t.Run("edit scoped to managed items", func(t *testing.T) {
		assert.True(t, c.Check(employer, domain.ActionEdit, domain.KindJob, "j1"))
		assert.False(t, c.Check(employer, domain.ActionEdit, domain.KindJob, "j2"))
		assert.True(t, c.Check(employer, domain.ActionEdit, domain.KindCompany, "c1"))
		assert.False(t, c.Check(employer, domain.ActionEdit, domain.KindCompany, "c2"))
		assert.True(t, c.Check(employer, domain.ActionDelete, domain.KindEvent, "ev1"))
		assert.False(t, c.Check(employer, domain.ActionDelete, domain.KindEvent, "ev2"))
	})

	t.Run("edit on other kinds denied", func(t *testing.T) {
		assert.False(t, c.Check(employer, domain.ActionEdit, domain.KindUser, "e1"))
		assert.False(t, c.Check(employer, domain.ActionDelete, domain.KindCourse, "x"))
	})

	t.Run("read and save always allowed", func(t *testing.T) {
		assert.True(t, c.Check(employer, domain.ActionRead, domain.KindCourse, ""))
		assert.True(t, c.Check(employer, domain.ActionSave, domain.KindJob, "j2"))
	})

	t.Run("unknown actions denied", func(t *testing.T) {
		assert.False(t, c.Check(employer, "approve", domain.KindJob, "j1"))
	})
}

func TestCheckEmployerWithoutOwnership(t *testing.T) {
	c := permission.NewChecker()
	// Company-less employer with no managed items must fail all scoped edits
	// without panicking.
	employer := &domain.Actor{ID: "e2", Role: domain.RoleEmployer}

	assert.False(t, c.Check(employer, domain.ActionEdit, domain.KindCompany, ""))
	assert.False(t, c.Check(employer, domain.ActionEdit, domain.KindJob, "j1"))
	assert.False(t, c.Check(employer, domain.ActionDelete, domain.KindEvent, "ev1"))
}

func TestCheckStudent(t *testing.T) {
	c := permission.NewChecker()
	student := &domain.Actor{ID: "s1", Role: domain.RoleStudent}

	assert.True(t, c.Check(student, domain.ActionRead, domain.KindJob, "j1"))
	assert.True(t, c.Check(student, domain.ActionSave, domain.KindCompany, "c1"))
	assert.False(t, c.Check(student, domain.ActionCreate, domain.KindJob, ""))
	assert.False(t, c.Check(student, domain.ActionEdit, domain.KindJob, "j1"))
	assert.False(t, c.Check(student, domain.ActionDelete, domain.KindEvent, "ev1"))
}

func TestDeleteCompanyProperty(t *testing.T) {
	c := permission.NewChecker()

	cases := []struct {
		name  string
		actor *domain.Actor
		id    string
		want  bool
	}{
		{"admin any company", &domain.Actor{Role: domain.RoleAdmin}, "cX", true},
		{"employer own company", &domain.Actor{Role: domain.RoleEmployer, CompanyID: "c1"}, "c1", true},
		{"employer other company", &domain.Actor{Role: domain.RoleEmployer, CompanyID: "c1"}, "c2", false},
		{"student", &domain.Actor{Role: domain.RoleStudent}, "c1", false},
		{"nobody", nil, "c1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Check(tc.actor, domain.ActionDelete, domain.KindCompany, tc.id))
		})
	}
}

func TestHasRole(t *testing.T) {
	c := permission.NewChecker()

	assert.False(t, c.HasRole(nil, domain.RoleAdmin))
	assert.True(t, c.HasRole(&domain.Actor{Role: domain.RoleStudent}, domain.RoleStudent))
	assert.False(t, c.HasRole(&domain.Actor{Role: domain.RoleStudent}, domain.RoleAdmin))
}
