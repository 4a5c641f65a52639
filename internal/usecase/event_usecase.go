package usecase

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/permission"
	"go-careerhub-backend/internal/query"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Registered events are persisted denormalized (full objects, not ids),
// matching the stored layout the UI reads back directly.
const keyRegisteredEvents = "registeredEvents"

type eventUsecase struct {
	eventRepo domain.EventRepository
	perm      *permission.Checker
	session   *SessionUsecase
	state     *localstore.Store
	validate  *validator.Validate
	gate      gate
}

func NewEventUsecase(eventRepo domain.EventRepository, perm *permission.Checker, session *SessionUsecase,
	state *localstore.Store, validate *validator.Validate, latency time.Duration) domain.EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
		perm:      perm,
		session:   session,
		state:     state,
		validate:  validate,
		gate:      gate{delay: latency},
	}
}

func (u *eventUsecase) ListEvents(ctx context.Context, filter domain.ListFilter) ([]domain.Event, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindEvent, "") {
		return nil, apperror.PermissionDenied("You are not allowed to view events")
	}

	events, err := u.eventRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return query.Events(events, filter, time.Now()), nil
}

func (u *eventUsecase) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindEvent, id) {
		return nil, apperror.PermissionDenied("You are not allowed to view events")
	}

	event, err := u.eventRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Event not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return event, nil
}

func (u *eventUsecase) CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionCreate, domain.KindEvent, "") {
		return nil, apperror.PermissionDenied("You are not allowed to create events")
	}

	event, appErr := u.eventFromDraft(draft)
	if appErr != nil {
		return nil, appErr
	}

	err := u.gate.do(func() error {
		return u.eventRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.session.recordOwnership(ctx, domain.KindEvent, event.ID)
	return event, nil
}

func (u *eventUsecase) UpdateEvent(ctx context.Context, id string, draft domain.EventDraft) (*domain.Event, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionEdit, domain.KindEvent, id) {
		return nil, apperror.PermissionDenied("You are not allowed to edit this event")
	}

	event, appErr := u.eventFromDraft(draft)
	if appErr != nil {
		return nil, appErr
	}
	event.ID = id

	err := u.gate.do(func() error {
		return u.eventRepo.Update(ctx, event)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Event not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return event, nil
}

func (u *eventUsecase) DeleteEvent(ctx context.Context, id string) error {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionDelete, domain.KindEvent, id) {
		return apperror.PermissionDenied("You are not allowed to delete this event")
	}

	err := u.gate.do(func() error {
		return u.eventRepo.Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Event not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *eventUsecase) Register(ctx context.Context, id string) (*domain.Event, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionSave, domain.KindEvent, id) {
		return nil, apperror.PermissionDenied("You are not allowed to register for events")
	}

	event, err := u.eventRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Event not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	registered, err := u.registeredEvents()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, r := range registered {
		if r.ID == id {
			return event, nil // already registered, keep the call idempotent
		}
	}

	registered = append(registered, *event)
	if err := u.state.Set(keyRegisteredEvents, registered); err != nil {
		return nil, apperror.Internal(err)
	}
	return event, nil
}

func (u *eventUsecase) Unregister(ctx context.Context, id string) error {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionSave, domain.KindEvent, id) {
		return apperror.PermissionDenied("You are not allowed to change event registrations")
	}

	registered, err := u.registeredEvents()
	if err != nil {
		return apperror.Internal(err)
	}

	out := registered[:0]
	for _, r := range registered {
		if r.ID != id {
			out = append(out, r)
		}
	}
	if err := u.state.Set(keyRegisteredEvents, out); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *eventUsecase) RegisteredEvents(ctx context.Context) ([]domain.Event, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionRead, domain.KindEvent, "") {
		return nil, apperror.PermissionDenied("You are not allowed to view events")
	}

	registered, err := u.registeredEvents()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return registered, nil
}

func (u *eventUsecase) registeredEvents() ([]domain.Event, error) {
	var registered []domain.Event
	err := u.state.Get(keyRegisteredEvents, &registered)
	if errors.Is(err, localstore.ErrNoValue) {
		return []domain.Event{}, nil
	}
	if err != nil {
		return nil, err
	}
	return registered, nil
}

func (u *eventUsecase) eventFromDraft(draft domain.EventDraft) (*domain.Event, *apperror.AppError) {
	if err := u.validate.Struct(draft); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FieldErrors(err))
	}

	date, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return nil, apperror.Validation("Validation failed", map[string]string{
			"date": "Date must be a valid date (YYYY-MM-DD)",
		})
	}

	return &domain.Event{
		Title:       draft.Title,
		Description: draft.Description,
		Date:        date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Location:    draft.Location,
		Organizer:   draft.Organizer,
		Type:        domain.EventType(draft.Type),
		Virtual:     draft.Virtual,
		Capacity:    draft.Capacity,
		Tags:        draft.Tags,
	}, nil
}
