package query_test

import (
	"testing"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/query"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func jobsFixture() []domain.Job {
	return []domain.Job{
		{ID: "j1", Title: "Software Engineer", CompanyName: "Acme", Location: "Berlin", PostedDate: now.AddDate(0, 0, -2)},
		{ID: "j2", Title: "Designer", CompanyName: "Globex", Location: "Remote", PostedDate: now.AddDate(0, 0, -20)},
		{ID: "j3", Title: "Data Analyst", CompanyName: "Initech Engineering", Location: "Munich", PostedDate: now.AddDate(0, 0, -40)},
	}
}

func TestJobsEmptyQueryReturnsAllInOrder(t *testing.T) {
	jobs := jobsFixture()
	got := query.Jobs(jobs, domain.ListFilter{}, now)

	assert.Equal(t, jobs, got)
}

func TestJobsSubstringMatch(t *testing.T) {
	got := query.Jobs(jobsFixture(), domain.ListFilter{Query: "engineer"}, now)

	// Matches title of j1 and company name of j3, case-insensitively.
	assert.Len(t, got, 2)
	assert.Equal(t, "j1", got[0].ID)
	assert.Equal(t, "j3", got[1].ID)
}

func TestJobsStudentEngineerScenario(t *testing.T) {
	jobs := []domain.Job{
		{ID: "a", Title: "Software Engineer"},
		{ID: "b", Title: "Designer"},
	}
	got := query.Jobs(jobs, domain.ListFilter{Query: "engineer"}, now)

	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestJobsDateWindow(t *testing.T) {
	jobs := jobsFixture()

	week := query.Jobs(jobs, domain.ListFilter{Date: domain.DateWeek}, now)
	assert.Len(t, week, 1)
	assert.Equal(t, "j1", week[0].ID)

	month := query.Jobs(jobs, domain.ListFilter{Date: domain.DateMonth}, now)
	assert.Len(t, month, 2)

	all := query.Jobs(jobs, domain.ListFilter{Date: domain.DateAll}, now)
	assert.Len(t, all, 3)
}

func TestJobsIsSubsetAndOrderPreserving(t *testing.T) {
	jobs := jobsFixture()
	for _, q := range []string{"", "e", "acme", "zzz", "REMOTE"} {
		got := query.Jobs(jobs, domain.ListFilter{Query: q}, now)
		assert.NotNil(t, got)

		// every result appears in the input, in input order
		i := 0
		for _, g := range got {
			for i < len(jobs) && jobs[i].ID != g.ID {
				i++
			}
			assert.Less(t, i, len(jobs), "result %s out of order for query %q", g.ID, q)
			i++
		}
	}
}

func TestEventsUpcomingSemantics(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", Title: "Past Fair", Date: now.AddDate(0, 0, -3)},
		{ID: "e2", Title: "Future Workshop", Date: now.AddDate(0, 0, 3)},
	}

	// week and month both mean "still upcoming" for events
	for _, d := range []domain.DateFilter{domain.DateWeek, domain.DateMonth} {
		got := query.Events(events, domain.ListFilter{Date: d}, now)
		assert.Len(t, got, 1)
		assert.Equal(t, "e2", got[0].ID)
	}

	all := query.Events(events, domain.ListFilter{}, now)
	assert.Len(t, all, 2)
}

func TestEventsTextFields(t *testing.T) {
	events := []domain.Event{
		{ID: "e1", Title: "Career Fair", Organizer: "CS Department", Location: "Main Hall"},
		{ID: "e2", Title: "Mock Interviews", Organizer: "Alumni Office", Location: "Room 12"},
	}

	got := query.Events(events, domain.ListFilter{Query: "alumni"}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)
}

func TestUsersStatusFilter(t *testing.T) {
	users := []domain.Actor{
		{ID: "u1", Name: "Ada", Email: "ada@uni.edu", Status: domain.StatusActive},
		{ID: "u2", Name: "Bob", Email: "bob@uni.edu", Status: domain.StatusInactive},
		{ID: "u3", Name: "Cara", Email: "cara@uni.edu", Status: domain.StatusActive},
	}

	got := query.Users(users, domain.ListFilter{Status: "active"})
	assert.Len(t, got, 2)

	got = query.Users(users, domain.ListFilter{Query: "bob", Status: "inactive"})
	assert.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	// "all" disables the constraint
	got = query.Users(users, domain.ListFilter{Status: "all"})
	assert.Len(t, got, 3)
}

func TestCoursesMatchTitleAndTags(t *testing.T) {
	courses := []domain.Course{
		{ID: "c1", Title: "Intro to Go", Tags: []string{"programming", "backend"}},
		{ID: "c2", Title: "Resume Writing", Tags: []string{"career"}},
	}

	byTitle := query.Courses(courses, domain.ListFilter{Query: "resume"})
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "c2", byTitle[0].ID)

	byTag := query.Courses(courses, domain.ListFilter{Query: "backend"})
	assert.Len(t, byTag, 1)
	assert.Equal(t, "c1", byTag[0].ID)
}

func TestEmptyInputs(t *testing.T) {
	assert.NotNil(t, query.Jobs(nil, domain.ListFilter{Query: "x"}, now))
	assert.Empty(t, query.Jobs(nil, domain.ListFilter{}, now))
	assert.NotNil(t, query.Users([]domain.Actor{}, domain.ListFilter{}))
	assert.NotNil(t, query.Companies(nil, domain.ListFilter{}))
	assert.NotNil(t, query.Events(nil, domain.ListFilter{}, now))
	assert.NotNil(t, query.Courses(nil, domain.ListFilter{}))
}
