package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationApplied ApplicationStatus = "applied"
	ApplicationReview  ApplicationStatus = "review"
)

type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ActorID     string            `json:"userId"`
	ResumeID    string            `json:"resumeId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"appliedDate"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

type ApplicationRepository interface {
	ListByActor(ctx context.Context, actorID string) ([]Application, error)
	GetByActorAndJob(ctx context.Context, actorID, jobID string) (*Application, error)
	Create(ctx context.Context, app *Application) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, resumeID string) (*Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
}
