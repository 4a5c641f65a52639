package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ResourceKind discriminates the managed resource collections. Dispatch is
// always by tag, never by structural probing of the item.
type ResourceKind string

const (
	KindUser    ResourceKind = "user"
	KindCompany ResourceKind = "company"
	KindJob     ResourceKind = "job"
	KindEvent   ResourceKind = "event"
	KindCourse  ResourceKind = "course"
	KindResume  ResourceKind = "resume"
)

// Action names a permission-checked operation on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionSave   Action = "save"
)

type DateFilter string

const (
	DateAll   DateFilter = "all"
	DateWeek  DateFilter = "week"
	DateMonth DateFilter = "month"
)

// ListFilter is the shared free-text + field filter input of every list
// surface. Status is only meaningful for the Users collection; Date keeps
// the source asymmetry (jobs by posting recency, events by still-upcoming).
type ListFilter struct {
	Query  string     `form:"q"`
	Status string     `form:"status"`
	Date   DateFilter `form:"date"`
}
