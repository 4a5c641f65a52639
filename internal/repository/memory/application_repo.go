package memory

import (
	"context"
	"sync"
	"time"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type applicationRepository struct {
	mu    sync.RWMutex
	items []domain.Application
}

func NewApplicationRepository() domain.ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) ListByActor(ctx context.Context, actorID string) ([]domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Application, 0)
	for _, app := range r.items {
		if app.ActorID == actorID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *applicationRepository) GetByActorAndJob(ctx context.Context, actorID, jobID string) (*domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, app := range r.items {
		if app.ActorID == actorID && app.JobID == jobID {
			found := app
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now()
	if app.AppliedDate.IsZero() {
		app.AppliedDate = now
	}
	app.LastUpdated = now
	r.items = append(r.items, *app)
	return nil
}
