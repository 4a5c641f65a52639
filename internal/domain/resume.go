package domain

import (
	"context"
	"time"
)

// Resume child entities have no independent id: identity is positional
// (index within the parent list), so removal-by-index must be exact.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone" validate:"omitempty,valid_phone"`
	Location string `json:"location"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
}

type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type Resume struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"userId"`
	Title          string          `json:"title"`
	Summary        string          `json:"summary"`
	Personal       PersonalInfo    `json:"personal"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	// Template is always selected; new resumes default to "modern".
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"` // refreshed on every mutation
}

// ResumeSection names an editable list (or the personal block) of a resume.
type ResumeSection string

const (
	SectionPersonal       ResumeSection = "personal"
	SectionEducation      ResumeSection = "education"
	SectionExperience     ResumeSection = "experience"
	SectionSkills         ResumeSection = "skills"
	SectionProjects       ResumeSection = "projects"
	SectionCertifications ResumeSection = "certifications"
	SectionAchievements   ResumeSection = "achievements" // employer builder flow only
)

// SectionEntry is the tagged payload for add/update operations; exactly one
// field matching the target section is set.
type SectionEntry struct {
	Education     *Education     `json:"education,omitempty"`
	Experience    *Experience    `json:"experience,omitempty"`
	Project       *Project       `json:"project,omitempty"`
	Certification *Certification `json:"certification,omitempty"`
	Skill         *string        `json:"skill,omitempty"`
}

type ResumeRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	GetByID(ctx context.Context, id string) (*Resume, error)
	Create(ctx context.Context, resume *Resume) error
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id string) error
}

type ResumeUsecase interface {
	ListResumes(ctx context.Context) ([]Resume, error)
	GetResume(ctx context.Context, id string) (*Resume, error)
	CreateResume(ctx context.Context, title string) (*Resume, error)
	DeleteResume(ctx context.Context, id string) error

	UpdatePersonalInfo(ctx context.Context, resumeID string, patch PersonalInfo) (*Resume, error)
	UpdateSummary(ctx context.Context, resumeID, summary string) (*Resume, error)
	SelectTemplate(ctx context.Context, resumeID, template string) (*Resume, error)
	AddEntry(ctx context.Context, resumeID string, section ResumeSection, entry SectionEntry) (*Resume, error)
	UpdateEntry(ctx context.Context, resumeID string, section ResumeSection, index int, entry SectionEntry) (*Resume, error)
	RemoveEntry(ctx context.Context, resumeID string, section ResumeSection, index int) (*Resume, error)

	// Score is recomputed on every read, never cached.
	Score(ctx context.Context, resumeID string) (int, error)
}
