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

type jobUsecase struct {
	jobRepo  domain.JobRepository
	perm     *permission.Checker
	session  *SessionUsecase
	validate *validator.Validate
	gate     gate
}

func NewJobUsecase(jobRepo domain.JobRepository, perm *permission.Checker, session *SessionUsecase,
	validate *validator.Validate, latency time.Duration) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		perm:     perm,
		session:  session,
		validate: validate,
		gate:     gate{delay: latency},
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.ListFilter) ([]domain.Job, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindJob, "") {
		return nil, apperror.PermissionDenied("You are not allowed to view jobs")
	}

	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return query.Jobs(jobs, filter, time.Now()), nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindJob, id) {
		return nil, apperror.PermissionDenied("You are not allowed to view jobs")
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionCreate, domain.KindJob, "") {
		return nil, apperror.PermissionDenied("You are not allowed to post jobs")
	}

	job, appErr := u.jobFromDraft(draft)
	if appErr != nil {
		return nil, appErr
	}

	err := u.gate.do(func() error {
		return u.jobRepo.Create(ctx, job)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.session.recordOwnership(ctx, domain.KindJob, job.ID)
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, draft domain.JobDraft) (*domain.Job, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionEdit, domain.KindJob, id) {
		return nil, apperror.PermissionDenied("You are not allowed to edit this job")
	}

	job, appErr := u.jobFromDraft(draft)
	if appErr != nil {
		return nil, appErr
	}
	job.ID = id

	err := u.gate.do(func() error {
		return u.jobRepo.Update(ctx, job)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionDelete, domain.KindJob, id) {
		return apperror.PermissionDenied("You are not allowed to delete this job")
	}

	err := u.gate.do(func() error {
		return u.jobRepo.Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// jobFromDraft validates the draft and builds the job. No resource is
// created when any field fails: errors carry the per-field messages for
// inline display.
func (u *jobUsecase) jobFromDraft(draft domain.JobDraft) (*domain.Job, *apperror.AppError) {
	if err := u.validate.Struct(draft); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}

	deadline, err := time.Parse("2006-01-02", draft.Deadline)
	if err != nil {
		return nil, apperror.Validation("Validation failed", map[string]string{
			"deadline": "Application deadline must be a valid date (YYYY-MM-DD)",
		})
	}
	// The deadline is deliberately not checked against the posting date.

	return &domain.Job{
		Title:        draft.Title,
		CompanyID:    draft.CompanyID,
		CompanyName:  draft.CompanyName,
		Location:     draft.Location,
		Type:         domain.JobType(draft.Type),
		Description:  draft.Description,
		Requirements: draft.Requirements,
		Salary:       draft.Salary,
		Deadline:     &deadline,
		Tags:         draft.Tags,
		Skills:       draft.Skills,
	}, nil
}
