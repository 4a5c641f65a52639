package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/permission"
	"go-careerhub-backend/internal/repository/localstore"
	"go-careerhub-backend/pkg/apperror"
)

// savedUsecase is the saved-item ledger. Sets are keyed per kind and per
// actor id ("savedJobs:student-1"); the source keyed by kind only, so the
// unscoped legacy key is claimed once, by whichever actor touches the kind
// first, and then deleted.
type savedUsecase struct {
	perm  *permission.Checker
	state *localstore.Store
}

func NewSavedUsecase(perm *permission.Checker, state *localstore.Store) domain.SavedUsecase {
	return &savedUsecase{perm: perm, state: state}
}

var savedKeys = map[domain.SavedKind]string{
	domain.SavedJobs:      "savedJobs",
	domain.SavedEvents:    "savedEvents",
	domain.SavedCompanies: "savedCompanies",
}

func savedKindToResource(kind domain.SavedKind) domain.ResourceKind {
	switch kind {
	case domain.SavedJobs:
		return domain.KindJob
	case domain.SavedEvents:
		return domain.KindEvent
	default:
		return domain.KindCompany
	}
}

func (u *savedUsecase) IsSaved(ctx context.Context, kind domain.SavedKind, id string) bool {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return false
	}
	set, err := u.load(kind, actor.ID)
	if err != nil {
		return false
	}
	for _, saved := range set {
		if saved == id {
			return true
		}
	}
	return false
}

// Toggle flips membership and returns the new state. Every toggle is
// persisted before returning so a restart preserves the set exactly.
func (u *savedUsecase) Toggle(ctx context.Context, kind domain.SavedKind, id string) (bool, error) {
	actor := domain.ActorFromContext(ctx)
	if !u.perm.Check(actor, domain.ActionSave, savedKindToResource(kind), id) {
		return false, apperror.PermissionDenied("You are not allowed to save items")
	}

	set, err := u.load(kind, actor.ID)
	if err != nil {
		return false, apperror.Internal(err)
	}

	next := make([]string, 0, len(set)+1)
	removed := false
	for _, saved := range set {
		if saved == id {
			removed = true
			continue
		}
		next = append(next, saved)
	}
	if !removed {
		next = append(next, id)
	}

	if err := u.state.Set(u.key(kind, actor.ID), next); err != nil {
		return false, apperror.Internal(err)
	}
	return !removed, nil
}

func (u *savedUsecase) List(ctx context.Context, kind domain.SavedKind) ([]string, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not logged in")
	}

	set, err := u.load(kind, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return set, nil
}

func (u *savedUsecase) key(kind domain.SavedKind, actorID string) string {
	return savedKeys[kind] + ":" + actorID
}

func (u *savedUsecase) load(kind domain.SavedKind, actorID string) ([]string, error) {
	var set []string
	err := u.state.Get(u.key(kind, actorID), &set)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, localstore.ErrNoValue) {
		return nil, err
	}

	// Migration: the source portal stored one shared set per kind. The
	// first actor to touch the kind claims it and the legacy key is
	// removed, so later actors start from an empty set instead of
	// inheriting the shared one.
	err = u.state.Get(savedKeys[kind], &set)
	if errors.Is(err, localstore.ErrNoValue) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := u.state.Set(u.key(kind, actorID), set); err != nil {
		return nil, err
	}
	if err := u.state.Delete(savedKeys[kind]); err != nil {
		return nil, err
	}
	return set, nil
}
