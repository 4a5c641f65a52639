package memory

import (
	"context"
	"sync"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type eventRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Event
	order []string
}

func NewEventRepository() domain.EventRepository {
	return &eventRepository{items: make(map[string]domain.Event)}
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	r.items[event.ID] = *event
	r.order = append(r.order, event.ID)
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[event.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Registrations are not part of the edit form and survive every update.
	event.RegisteredCount = current.RegisteredCount
	r.items[event.ID] = *event
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
