package memory_test

import (
	"context"
	"testing"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobUpdatePreservesPostedDate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJobRepository()

	posted := time.Now().AddDate(0, 0, -10)
	require.NoError(t, repo.Create(ctx, &domain.Job{ID: "job-1", Title: "Backend Intern", PostedDate: posted}))

	require.NoError(t, repo.Update(ctx, &domain.Job{ID: "job-1", Title: "Backend Intern (Summer)"}))

	job, err := repo.GetByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern (Summer)", job.Title)
	assert.True(t, job.PostedDate.Equal(posted))
}

func TestEventUpdatePreservesRegisteredCount(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventRepository()

	require.NoError(t, repo.Create(ctx, &domain.Event{
		ID: "event-1", Title: "Spring Career Fair", RegisteredCount: 210,
	}))

	// Edits come from the event form, which has no registrations field.
	require.NoError(t, repo.Update(ctx, &domain.Event{ID: "event-1", Title: "Spring Career Fair (Main Hall)"}))

	event, err := repo.GetByID(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, "Spring Career Fair (Main Hall)", event.Title)
	assert.Equal(t, 210, event.RegisteredCount)
}

func TestCompanyUpdatePreservesOpenPositions(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCompanyRepository()

	require.NoError(t, repo.Create(ctx, &domain.Company{
		ID: "company-1", Name: "Demo Company", OpenPositions: 2,
	}))

	require.NoError(t, repo.Update(ctx, &domain.Company{ID: "company-1", Name: "Demo Company GmbH"}))

	company, err := repo.GetByID(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Company GmbH", company.Name)
	assert.Equal(t, 2, company.OpenPositions)
}
