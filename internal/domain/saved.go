package domain

import "context"

// SavedKind names the resource collections a user can bookmark.
type SavedKind string

const (
	SavedJobs      SavedKind = "jobs"
	SavedEvents    SavedKind = "events"
	SavedCompanies SavedKind = "companies"
)

// SavedUsecase is the saved-item ledger. Toggle is the only mutator: callers
// flip membership and read the returned state to update their own badge.
// Every toggle is persisted immediately so a restart preserves the set.
type SavedUsecase interface {
	IsSaved(ctx context.Context, kind SavedKind, id string) bool
	Toggle(ctx context.Context, kind SavedKind, id string) (bool, error)
	List(ctx context.Context, kind SavedKind) ([]string, error)
}
