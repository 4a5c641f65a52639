package memory

import (
	"context"
	"sync"
	"time"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type resumeRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Resume
	order []string
}

func NewResumeRepository() domain.ResumeRepository {
	return &resumeRepository{items: make(map[string]domain.Resume)}
}

func (r *resumeRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Resume, 0)
	for _, id := range r.order {
		if resume := r.items[id]; resume.OwnerID == ownerID {
			out = append(out, resume)
		}
	}
	return out, nil
}

func (r *resumeRepository) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resume, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &resume, nil
}

func (r *resumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	now := time.Now()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = now
	}
	resume.UpdatedAt = now
	r.items[resume.ID] = *resume
	r.order = append(r.order, resume.ID)
	return nil
}

func (r *resumeRepository) Update(ctx context.Context, resume *domain.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[resume.ID]; !ok {
		return domain.ErrNotFound
	}
	resume.UpdatedAt = time.Now()
	r.items[resume.ID] = *resume
	return nil
}

func (r *resumeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
