package memory

import (
	"context"
	"strings"
	"sync"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type actorRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Actor
	order []string
}

func NewActorRepository() domain.ActorRepository {
	return &actorRepository{items: make(map[string]domain.Actor)}
}

func (r *actorRepository) List(ctx context.Context) ([]domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Actor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *actorRepository) GetByID(ctx context.Context, id string) (*domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &actor, nil
}

func (r *actorRepository) GetByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		actor := r.items[id]
		if strings.EqualFold(actor.Email, email) {
			return &actor, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *actorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actor.ID == "" {
		actor.ID = uuid.NewString()
	}
	r.items[actor.ID] = *actor
	r.order = append(r.order, actor.ID)
	return nil
}

func (r *actorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[actor.ID]
	if !ok {
		return domain.ErrNotFound
	}
	actor.Role = current.Role // role is immutable after creation
	r.items[actor.ID] = *actor
	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
