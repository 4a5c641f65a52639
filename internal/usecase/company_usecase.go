package usecase

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/permission"
	"go-careerhub-backend/internal/query"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	perm        *permission.Checker
	session     *SessionUsecase
	validate    *validator.Validate
	gate        gate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, perm *permission.Checker,
	session *SessionUsecase, validate *validator.Validate, latency time.Duration) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		perm:        perm,
		session:     session,
		validate:    validate,
		gate:        gate{delay: latency},
	}
}

func (u *companyUsecase) ListCompanies(ctx context.Context, filter domain.ListFilter) ([]domain.Company, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindCompany, "") {
		return nil, apperror.PermissionDenied("You are not allowed to view companies")
	}

	companies, err := u.companyRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return query.Companies(companies, filter), nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindCompany, id) {
		return nil, apperror.PermissionDenied("You are not allowed to view companies")
	}

	company, err := u.companyRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Company not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) CreateCompany(ctx context.Context, draft domain.CompanyDraft) (*domain.Company, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionCreate, domain.KindCompany, "") {
		return nil, apperror.PermissionDenied("You are not allowed to add companies")
	}

	if err := u.validate.Struct(draft); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}

	company := &domain.Company{
		Name:        draft.Name,
		Logo:        draft.Logo,
		Description: draft.Description,
		Industry:    draft.Industry,
		Location:    draft.Location,
		Website:     draft.Website,
		Size:        draft.Size,
		Founded:     draft.Founded,
	}

	err := u.gate.do(func() error {
		return u.companyRepo.Create(ctx, company)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.session.recordOwnership(ctx, domain.KindCompany, company.ID)
	return company, nil
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, id string, draft domain.CompanyDraft) (*domain.Company, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionEdit, domain.KindCompany, id) {
		return nil, apperror.PermissionDenied("You are not allowed to edit this company")
	}

	if err := u.validate.Struct(draft); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}

	company := &domain.Company{
		ID:          id,
		Name:        draft.Name,
		Logo:        draft.Logo,
		Description: draft.Description,
		Industry:    draft.Industry,
		Location:    draft.Location,
		Website:     draft.Website,
		Size:        draft.Size,
		Founded:     draft.Founded,
	}

	err := u.gate.do(func() error {
		return u.companyRepo.Update(ctx, company)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Company not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// DeleteCompany removes only the company. Jobs referencing it keep their
// companyId and resolve it as a nullable lookup from then on.
func (u *companyUsecase) DeleteCompany(ctx context.Context, id string) error {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionDelete, domain.KindCompany, id) {
		return apperror.PermissionDenied("You are not allowed to delete this company")
	}

	err := u.gate.do(func() error {
		return u.companyRepo.Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Company not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
