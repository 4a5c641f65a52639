package usecase

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	resumeRepo      domain.ResumeRepository
	gate            gate
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository,
	resumeRepo domain.ResumeRepository, latency time.Duration) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		resumeRepo:      resumeRepo,
		gate:            gate{delay: latency},
	}
}

// Apply submits a resume to a job. Only students apply; one application per
// actor per job, duplicates are rejected rather than overwritten.
func (u *applicationUsecase) Apply(ctx context.Context, jobID, resumeID string) (*domain.Application, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}
	if actor.Role != domain.RoleStudent {
		return nil, apperror.PermissionDenied("Only students can apply to jobs")
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	resume, err := u.resumeRepo.GetByID(ctx, resumeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if resume.OwnerID != actor.ID {
		return nil, apperror.PermissionDenied("You can only apply with your own resume")
	}

	existing, err := u.applicationRepo.GetByActorAndJob(ctx, actor.ID, jobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	now := time.Now()
	app := &domain.Application{
		JobID:       jobID,
		ActorID:     actor.ID,
		ResumeID:    resumeID,
		Status:      domain.ApplicationApplied,
		AppliedDate: now,
		LastUpdated: now,
	}

	gateErr := u.gate.do(func() error {
		return u.applicationRepo.Create(ctx, app)
	})
	if gateErr != nil {
		return nil, apperror.Internal(gateErr)
	}
	return app, nil
}

func (u *applicationUsecase) ListApplications(ctx context.Context) ([]domain.Application, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}

	apps, err := u.applicationRepo.ListByActor(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
