package domain

import "context"

type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Logo          string   `json:"logo,omitempty"` // data URL, never a stored file
	Description   string   `json:"description"`
	Industry      []string `json:"industry"`
	Location      string   `json:"location"`
	Website       string   `json:"website"`
	Size          string   `json:"size,omitempty"`
	Founded       int      `json:"founded,omitempty"`
	OpenPositions int      `json:"openPositions,omitempty"`
}

type CompanyDraft struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Logo        string   `json:"logo"`
	Description string   `json:"description" validate:"required"`
	Industry    []string `json:"industry" validate:"required,min=1"`
	Location    string   `json:"location" validate:"required"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Size        string   `json:"size"`
	Founded     int      `json:"founded"`
}

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context, filter ListFilter) ([]Company, error)
	GetCompany(ctx context.Context, id string) (*Company, error)
	CreateCompany(ctx context.Context, draft CompanyDraft) (*Company, error)
	UpdateCompany(ctx context.Context, id string, draft CompanyDraft) (*Company, error)
	DeleteCompany(ctx context.Context, id string) error
}
