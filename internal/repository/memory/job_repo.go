package memory

import (
	"context"
	"sync"
	"time"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type jobRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Job
	order []string // insertion order, listings must be stable
}

func NewJobRepository() domain.JobRepository {
	return &jobRepository{items: make(map[string]domain.Job)}
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Job, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now()
	}
	r.items[job.ID] = *job
	r.order = append(r.order, job.ID)
	return nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[job.ID]
	if !ok {
		return domain.ErrNotFound
	}
	job.PostedDate = current.PostedDate // immutable after creation
	r.items[job.ID] = *job
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}

func removeID(order []string, id string) []string {
	out := order[:0]
	for _, v := range order {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
