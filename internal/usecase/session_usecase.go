package usecase

import (
	"context"
	"errors"
	"sync"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/logger"
)

const keyUser = "user"

// SessionUsecase owns the single current actor. The login is a mock: any
// known email signs in without a password check, an unknown email becomes a
// fresh student account. The actor snapshot is persisted in plain form
// under the "user" key, a stated non-production stand-in for real auth.
type SessionUsecase struct {
	actorRepo domain.ActorRepository
	state     *localstore.Store

	mu      sync.RWMutex
	current *domain.Actor
}

var _ domain.SessionUsecase = (*SessionUsecase)(nil)

func NewSessionUsecase(actorRepo domain.ActorRepository, state *localstore.Store) *SessionUsecase {
	uc := &SessionUsecase{actorRepo: actorRepo, state: state}

	// Restore the persisted session, if any. A snapshot that no longer
	// parses is dropped rather than blocking startup.
	var actor domain.Actor
	if err := state.Get(keyUser, &actor); err == nil && actor.ID != "" {
		uc.current = &actor
	} else if err != nil && !errors.Is(err, localstore.ErrNoValue) {
		logger.Log.Warn("discarding unreadable session snapshot", "error", err)
	}
	return uc
}

func (u *SessionUsecase) Login(ctx context.Context, email, password string) (*domain.Actor, error) {
	if email == "" {
		return nil, apperror.BadRequest("Email is required")
	}

	actor, err := u.actorRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		// Unknown emails become new student accounts, matching the demo
		// behavior of the source portal.
		actor = &domain.Actor{
			Name:   "New Student",
			Email:  email,
			Role:   domain.RoleStudent,
			Status: domain.StatusActive,
		}
		if err := u.actorRepo.Create(ctx, actor); err != nil {
			return nil, apperror.Internal(err)
		}
	} else if err != nil {
		return nil, apperror.Internal(err)
	}

	if actor.Status != domain.StatusActive {
		return nil, apperror.PermissionDenied("Account is not active")
	}

	u.mu.Lock()
	u.current = actor
	u.mu.Unlock()

	if err := u.state.Set(keyUser, actor); err != nil {
		return nil, apperror.Internal(err)
	}
	return actor, nil
}

func (u *SessionUsecase) Logout(ctx context.Context) error {
	u.mu.Lock()
	u.current = nil
	u.mu.Unlock()
	return u.state.Delete(keyUser)
}

func (u *SessionUsecase) Current(ctx context.Context) *domain.Actor {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.current == nil {
		return nil
	}
	actor := *u.current
	return &actor
}

func (u *SessionUsecase) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.Actor, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}

	actor := *u.current
	if patch.Name != "" {
		actor.Name = patch.Name
	}
	actor.Bio = patch.Bio
	actor.Location = patch.Location
	if patch.Avatar != "" {
		actor.Avatar = patch.Avatar
	}

	if err := u.actorRepo.Update(ctx, &actor); err != nil {
		return nil, apperror.Internal(err)
	}
	u.current = &actor
	if err := u.state.Set(keyUser, &actor); err != nil {
		return nil, apperror.Internal(err)
	}
	result := actor
	return &result, nil
}

// recordOwnership appends a freshly created resource to the current
// employer's ownership record so scoped edit permission follows creation.
// Admins and other roles are untouched.
func (u *SessionUsecase) recordOwnership(ctx context.Context, kind domain.ResourceKind, id string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil || u.current.Role != domain.RoleEmployer {
		return
	}

	actor := *u.current
	switch kind {
	case domain.KindJob, domain.KindEvent:
		items := domain.ManagedItems{}
		if actor.ManagedItems != nil {
			items = *actor.ManagedItems
		}
		if kind == domain.KindJob {
			items.JobIDs = append(append([]string{}, items.JobIDs...), id)
		} else {
			items.EventIDs = append(append([]string{}, items.EventIDs...), id)
		}
		actor.ManagedItems = &items
	case domain.KindCompany:
		if actor.CompanyID != "" {
			return // employers manage at most one company
		}
		actor.CompanyID = id
	default:
		return
	}

	if err := u.actorRepo.Update(ctx, &actor); err != nil {
		logger.Log.Error("failed to record ownership", "kind", kind, "id", id, "error", err)
		return
	}
	u.current = &actor
	if err := u.state.Set(keyUser, &actor); err != nil {
		logger.Log.Error("failed to persist session after ownership update", "error", err)
	}
}
