package domain

import "context"

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Provider    string   `json:"provider"`
	Duration    string   `json:"duration,omitempty"`
	Level       string   `json:"level,omitempty"`
	Tags        []string `json:"tags"`
}

type CourseDraft struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required"`
	Provider    string   `json:"provider" validate:"required"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Tags        []string `json:"tags"`
}

type CourseRepository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id string) error
}

type CourseUsecase interface {
	ListCourses(ctx context.Context, filter ListFilter) ([]Course, error)
	GetCourse(ctx context.Context, id string) (*Course, error)
	CreateCourse(ctx context.Context, draft CourseDraft) (*Course, error)
	UpdateCourse(ctx context.Context, id string, draft CourseDraft) (*Course, error)
	DeleteCourse(ctx context.Context, id string) error
}
