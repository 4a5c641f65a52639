package memory

import (
	"context"
	"sync"

	"go-careerhub-backend/internal/domain"

	"github.com/google/uuid"
)

type companyRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Company
	order []string
}

func NewCompanyRepository() domain.CompanyRepository {
	return &companyRepository{items: make(map[string]domain.Company)}
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Company, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &company, nil
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	r.items[company.ID] = *company
	r.order = append(r.order, company.ID)
	return nil
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[company.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// The open-positions counter is derived, not part of the edit form.
	company.OpenPositions = current.OpenPositions
	r.items[company.ID] = *company
	return nil
}

// Delete removes only the company record. Jobs keep their companyId on
// purpose: references are allowed to dangle and resolve as nullable lookups.
func (r *companyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
