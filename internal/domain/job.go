package domain

import (
	"context"
	"time"
)

type JobType string

const (
	JobFullTime   JobType = "fulltime"
	JobPartTime   JobType = "parttime"
	JobInternship JobType = "internship"
	JobContract   JobType = "contract"
)

type Job struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// CompanyID may become dangling if the company is later deleted; lookups
	// must treat it as nullable and fall back to CompanyName.
	CompanyID    string     `json:"companyId"`
	CompanyName  string     `json:"company"`
	Location     string     `json:"location"`
	Type         JobType    `json:"type"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	Salary       string     `json:"salary"`
	PostedDate   time.Time  `json:"postedDate"` // set at creation, immutable
	Deadline     *time.Time `json:"deadline,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Skills       []string   `json:"skills,omitempty"`
}

// JobDraft is the validated input for create and update. Validation rules
// mirror the posting form: short titles and thin descriptions are rejected
// before any resource is created.
type JobDraft struct {
	Title        string   `json:"title" validate:"required,min=3"`
	CompanyID    string   `json:"companyId"`
	CompanyName  string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=fulltime parttime internship contract"`
	Description  string   `json:"description" validate:"required,min=50"`
	Requirements []string `json:"requirements" validate:"required,min=1"`
	Salary       string   `json:"salary" validate:"required"`
	Deadline     string   `json:"deadline" validate:"required"`
	Tags         []string `json:"tags"`
	Skills       []string `json:"skills" validate:"required,min=1"`
}

type JobRepository interface {
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter ListFilter) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, draft JobDraft) (*Job, error)
	UpdateJob(ctx context.Context, id string, draft JobDraft) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
}
