package domain

import (
	"context"
	"time"
)

type EventType string

const (
	EventWorkshop    EventType = "workshop"
	EventCareerFair  EventType = "career_fair"
	EventInfoSession EventType = "info_session"
	EventNetworking  EventType = "networking"
	EventOther       EventType = "other"
)

type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Location        string    `json:"location"`
	Organizer       string    `json:"organizer"`
	Type            EventType `json:"type"`
	Virtual         bool      `json:"virtual"`
	Capacity        int       `json:"capacity,omitempty"`
	RegisteredCount int       `json:"registeredCount,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
}

type EventDraft struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	StartTime   string   `json:"startTime" validate:"required"`
	EndTime     string   `json:"endTime" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Organizer   string   `json:"organizer" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=workshop career_fair info_session networking other"`
	Virtual     bool     `json:"virtual"`
	Capacity    int      `json:"capacity"`
	Tags        []string `json:"tags"`
}

type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

type EventUsecase interface {
	ListEvents(ctx context.Context, filter ListFilter) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, draft EventDraft) (*Event, error)
	UpdateEvent(ctx context.Context, id string, draft EventDraft) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	// Registration is persisted as denormalized full Event objects, matching
	// the stored layout the UI reads back directly.
	Register(ctx context.Context, id string) (*Event, error)
	Unregister(ctx context.Context, id string) error
	RegisteredEvents(ctx context.Context) ([]Event, error)
}
