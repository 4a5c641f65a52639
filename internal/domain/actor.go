package domain

import "context"

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

type ActorStatus string

const (
	StatusActive   ActorStatus = "active"
	StatusInactive ActorStatus = "inactive"
	StatusPending  ActorStatus = "pending"
)

// ManagedItems is the ownership record used for scoped employer permissions.
type ManagedItems struct {
	JobIDs   []string `json:"jobs"`
	EventIDs []string `json:"events"`
}

// Actor is any portal user. Role is the discriminator: employer-only and
// student-only fields are populated according to it, never inferred from
// which fields are set. Role is immutable after creation; Status is mutable
// only through admin operations.
type Actor struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   Role        `json:"role"`
	Status ActorStatus `json:"status"`

	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`

	// Employer only
	CompanyID    string        `json:"companyId,omitempty"`
	CompanyName  string        `json:"company,omitempty"`
	Position     string        `json:"position,omitempty"`
	ManagedItems *ManagedItems `json:"managedItems,omitempty"`

	// Student only
	Major          string   `json:"major,omitempty"`
	GraduationYear int      `json:"graduationYear,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// ManagesJob reports whether the actor's ownership record contains the job.
func (a *Actor) ManagesJob(id string) bool {
	if a == nil || a.ManagedItems == nil {
		return false
	}
	for _, jobID := range a.ManagedItems.JobIDs {
		if jobID == id {
			return true
		}
	}
	return false
}

// ManagesEvent reports whether the actor's ownership record contains the event.
func (a *Actor) ManagesEvent(id string) bool {
	if a == nil || a.ManagedItems == nil {
		return false
	}
	for _, eventID := range a.ManagedItems.EventIDs {
		if eventID == id {
			return true
		}
	}
	return false
}

// ActorRepository manages the Users collection shown in the admin console.
type ActorRepository interface {
	List(ctx context.Context) ([]Actor, error)
	GetByID(ctx context.Context, id string) (*Actor, error)
	GetByEmail(ctx context.Context, email string) (*Actor, error)
	Create(ctx context.Context, actor *Actor) error
	Update(ctx context.Context, actor *Actor) error
	Delete(ctx context.Context, id string) error
}

// SessionUsecase owns the single current actor of the running portal
// instance. The actor snapshot is persisted in plain form, a stated
// non-production stand-in for real authentication.
type SessionUsecase interface {
	Login(ctx context.Context, email, password string) (*Actor, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) *Actor
	UpdateProfile(ctx context.Context, patch ProfilePatch) (*Actor, error)
}

// ProfilePatch updates the current actor's own mutable profile fields.
type ProfilePatch struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"` // data URL, not a stored file
}
