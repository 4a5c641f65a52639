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

// Courses are admin-curated: only the admin console creates or edits them,
// which the permission policy already encodes (create on courses is false
// for every non-admin role).
type courseUsecase struct {
	courseRepo domain.CourseRepository
	perm       *permission.Checker
	validate   *validator.Validate
	gate       gate
}

func NewCourseUsecase(courseRepo domain.CourseRepository, perm *permission.Checker,
	validate *validator.Validate, latency time.Duration) domain.CourseUsecase {
	return &courseUsecase{
		courseRepo: courseRepo,
		perm:       perm,
		validate:   validate,
		gate:       gate{delay: latency},
	}
}

func (u *courseUsecase) ListCourses(ctx context.Context, filter domain.ListFilter) ([]domain.Course, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindCourse, "") {
		return nil, apperror.PermissionDenied("You are not allowed to view courses")
	}

	courses, err := u.courseRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return query.Courses(courses, filter), nil
}

func (u *courseUsecase) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindCourse, id) {
		return nil, apperror.PermissionDenied("You are not allowed to view courses")
	}

	course, err := u.courseRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Course not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return course, nil
}

func (u *courseUsecase) CreateCourse(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionCreate, domain.KindCourse, "") {
		return nil, apperror.PermissionDenied("You are not allowed to add courses")
	}

	if err := u.validate.Struct(draft); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}

	course := &domain.Course{
		Title:       draft.Title,
		Description: draft.Description,
		Provider:    draft.Provider,
		Duration:    draft.Duration,
		Level:       draft.Level,
		Tags:        draft.Tags,
	}

	err := u.gate.do(func() error {
		return u.courseRepo.Create(ctx, course)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return course, nil
}

func (u *courseUsecase) UpdateCourse(ctx context.Context, id string, draft domain.CourseDraft) (*domain.Course, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionEdit, domain.KindCourse, id) {
		return nil, apperror.PermissionDenied("You are not allowed to edit this course")
	}

	if err := u.validate.Struct(draft); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}

	course := &domain.Course{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Provider:    draft.Provider,
		Duration:    draft.Duration,
		Level:       draft.Level,
		Tags:        draft.Tags,
	}

	err := u.gate.do(func() error {
		return u.courseRepo.Update(ctx, course)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Course not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return course, nil
}

func (u *courseUsecase) DeleteCourse(ctx context.Context, id string) error {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionDelete, domain.KindCourse, id) {
		return apperror.PermissionDenied("You are not allowed to delete this course")
	}

	err := u.gate.do(func() error {
		return u.courseRepo.Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Course not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
