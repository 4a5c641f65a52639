package memory

import (
	"context"
	"sync"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type courseRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Course
	order []string
}

func NewCourseRepository() domain.CourseRepository {
	return &courseRepository{items: make(map[string]domain.Course)}
}

func (r *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Course, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	r.items[course.ID] = *course
	r.order = append(r.order, course.ID)
	return nil
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[course.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[course.ID] = *course
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
