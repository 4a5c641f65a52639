package usecase

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/render"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Resumes are private documents: every operation goes through the owner
// check rather than the shared permission matrix. Admins may read and
// delete any resume but still cannot edit someone else's content.
type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	validate   *validator.Validate
	gate       gate
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, validate *validator.Validate, latency time.Duration) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		validate:   validate,
		gate:       gate{delay: latency},
	}
}

func (u *resumeUsecase) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}

	resumes, err := u.resumeRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(resumes) == 0 {
		// Every recognized user owns at least one resume. The first list
		// after login creates the default one.
		resume, createErr := u.CreateResume(ctx, "My Resume")
		if createErr != nil {
			return nil, createErr
		}
		return []domain.Resume{*resume}, nil
	}
	return resumes, nil
}

func (u *resumeUsecase) GetResume(ctx context.Context, id string) (*domain.Resume, error) {
	return u.ownedResume(ctx, id, true)
}

func (u *resumeUsecase) CreateResume(ctx context.Context, title string) (*domain.Resume, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}
	if title == "" {
		title = "Untitled Resume"
	}

	resume := &domain.Resume{
		OwnerID:  actor.ID,
		Title:    title,
		Template: "modern",
		Personal: domain.PersonalInfo{
			FullName: actor.Name,
			Email:    actor.Email,
		},
		Education:      []domain.Education{},
		Experience:     []domain.Experience{},
		Skills:         []string{},
		Projects:       []domain.Project{},
		Certifications: []domain.Certification{},
	}

	err := u.gate.do(func() error {
		return u.resumeRepo.Create(ctx, resume)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id string) error {
	if _, err := u.ownedResume(ctx, id, true); err != nil {
		return err
	}

	err := u.gate.do(func() error {
		return u.resumeRepo.Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Resume not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *resumeUsecase) UpdatePersonalInfo(ctx context.Context, resumeID string, patch domain.PersonalInfo) (*domain.Resume, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}
	return u.mutate(ctx, resumeID, func(r *domain.Resume) *apperror.AppError {
		r.Personal = patch
		return nil
	})
}

func (u *resumeUsecase) UpdateSummary(ctx context.Context, resumeID, summary string) (*domain.Resume, error) {
	return u.mutate(ctx, resumeID, func(r *domain.Resume) *apperror.AppError {
		r.Summary = summary
		return nil
	})
}

func (u *resumeUsecase) SelectTemplate(ctx context.Context, resumeID, template string) (*domain.Resume, error) {
	return u.mutate(ctx, resumeID, func(r *domain.Resume) *apperror.AppError {
		if _, ok := render.Presets[template]; !ok {
			return apperror.BadRequest("Unknown resume template")
		}
		r.Template = template
		return nil
	})
}

func (u *resumeUsecase) AddEntry(ctx context.Context, resumeID string, section domain.ResumeSection, entry domain.SectionEntry) (*domain.Resume, error) {
	return u.mutate(ctx, resumeID, func(r *domain.Resume) *apperror.AppError {
		switch section {
		case domain.SectionEducation:
			if entry.Education == nil {
				return apperror.BadRequest("Education entry required")
			}
			r.Education = append(r.Education, *entry.Education)
		case domain.SectionExperience:
			if entry.Experience == nil {
				return apperror.BadRequest("Experience entry required")
			}
			r.Experience = append(r.Experience, *entry.Experience)
		case domain.SectionProjects:
			if entry.Project == nil {
				return apperror.BadRequest("Project entry required")
			}
			r.Projects = append(r.Projects, *entry.Project)
		case domain.SectionCertifications:
			if entry.Certification == nil {
				return apperror.BadRequest("Certification entry required")
			}
			r.Certifications = append(r.Certifications, *entry.Certification)
		case domain.SectionSkills:
			if entry.Skill == nil || *entry.Skill == "" {
				return apperror.BadRequest("Skill required")
			}
			r.Skills = append(r.Skills, *entry.Skill)
		default:
			return apperror.BadRequest("Section does not hold entries")
		}
		return nil
	})
}

func (u *resumeUsecase) UpdateEntry(ctx context.Context, resumeID string, section domain.ResumeSection, index int, entry domain.SectionEntry) (*domain.Resume, error) {
	return u.mutate(ctx, resumeID, func(r *domain.Resume) *apperror.AppError {
		switch section {
		case domain.SectionEducation:
			if entry.Education == nil {
				return apperror.BadRequest("Education entry required")
			}
			if index < 0 || index >= len(r.Education) {
				return apperror.NotFound("Entry not found")
			}
			r.Education[index] = *entry.Education
		case domain.SectionExperience:
			if entry.Experience == nil {
				return apperror.BadRequest("Experience entry required")
			}
			if index < 0 || index >= len(r.Experience) {
				return apperror.NotFound("Entry not found")
			}
			r.Experience[index] = *entry.Experience
		case domain.SectionProjects:
			if entry.Project == nil {
				return apperror.BadRequest("Project entry required")
			}
			if index < 0 || index >= len(r.Projects) {
				return apperror.NotFound("Entry not found")
			}
			r.Projects[index] = *entry.Project
		case domain.SectionCertifications:
			if entry.Certification == nil {
				return apperror.BadRequest("Certification entry required")
			}
			if index < 0 || index >= len(r.Certifications) {
				return apperror.NotFound("Entry not found")
			}
			r.Certifications[index] = *entry.Certification
		case domain.SectionSkills:
			if entry.Skill == nil || *entry.Skill == "" {
				return apperror.BadRequest("Skill required")
			}
			if index < 0 || index >= len(r.Skills) {
				return apperror.NotFound("Entry not found")
			}
			r.Skills[index] = *entry.Skill
		default:
			return apperror.BadRequest("Section does not hold entries")
		}
		return nil
	})
}

func (u *resumeUsecase) RemoveEntry(ctx context.Context, resumeID string, section domain.ResumeSection, index int) (*domain.Resume, error) {
	return u.mutate(ctx, resumeID, func(r *domain.Resume) *apperror.AppError {
		switch section {
		case domain.SectionEducation:
			if index < 0 || index >= len(r.Education) {
				return apperror.NotFound("Entry not found")
			}
			r.Education = append(r.Education[:index], r.Education[index+1:]...)
		case domain.SectionExperience:
			if index < 0 || index >= len(r.Experience) {
				return apperror.NotFound("Entry not found")
			}
			r.Experience = append(r.Experience[:index], r.Experience[index+1:]...)
		case domain.SectionProjects:
			if index < 0 || index >= len(r.Projects) {
				return apperror.NotFound("Entry not found")
			}
			r.Projects = append(r.Projects[:index], r.Projects[index+1:]...)
		case domain.SectionCertifications:
			if index < 0 || index >= len(r.Certifications) {
				return apperror.NotFound("Entry not found")
			}
			r.Certifications = append(r.Certifications[:index], r.Certifications[index+1:]...)
		case domain.SectionSkills:
			if index < 0 || index >= len(r.Skills) {
				return apperror.NotFound("Entry not found")
			}
			r.Skills = append(r.Skills[:index], r.Skills[index+1:]...)
		default:
			return apperror.BadRequest("Section does not hold entries")
		}
		return nil
	})
}

func (u *resumeUsecase) Score(ctx context.Context, resumeID string) (int, error) {
	actor := domain.ActorFromContext(ctx)
	resume, err := u.ownedResume(ctx, resumeID, true)
	if err != nil {
		return 0, err
	}
	return ScoreResume(resume, actor.Role), nil
}

// mutate loads the owned resume, applies fn and writes it back under the
// gate. Admins cannot mutate resumes they do not own.
func (u *resumeUsecase) mutate(ctx context.Context, resumeID string, fn func(*domain.Resume) *apperror.AppError) (*domain.Resume, error) {
	resume, err := u.ownedResume(ctx, resumeID, false)
	if err != nil {
		return nil, err
	}

	if appErr := fn(resume); appErr != nil {
		return nil, appErr
	}

	gateErr := u.gate.do(func() error {
		return u.resumeRepo.Update(ctx, resume)
	})
	if errors.Is(gateErr, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if gateErr != nil {
		return nil, apperror.Internal(gateErr)
	}
	return resume, nil
}

func (u *resumeUsecase) ownedResume(ctx context.Context, id string, adminMayAccess bool) (*domain.Resume, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}

	resume, err := u.resumeRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if resume.OwnerID != actor.ID && !(adminMayAccess && actor.IsAdmin()) {
		return nil, apperror.PermissionDenied("You are not allowed to access this resume")
	}
	return resume, nil
}
