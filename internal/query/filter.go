// Package query is the pure client-side filter engine. Every function is a
// deterministic, order-preserving projection of its input: results are a
// stable subsequence of the input slice and are never nil.
package query

import (
	"strings"
	"time"

	"go-careerhub-backend/internal/domain"
)

// matchText reports whether any field contains the query as a
// case-insensitive substring. An empty query matches everything.
func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// dateCutoff resolves week/month to the trailing cutoff used for job
// posting dates.
func dateCutoff(f domain.DateFilter, now time.Time) (time.Time, bool) {
	switch f {
	case domain.DateWeek:
		return now.AddDate(0, 0, -7), true
	case domain.DateMonth:
		return now.AddDate(0, 0, -30), true
	}
	return time.Time{}, false
}

func Users(items []domain.Actor, filter domain.ListFilter) []domain.Actor {
	out := make([]domain.Actor, 0, len(items))
	for _, u := range items {
		if !matchText(filter.Query, u.Name, u.Email) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(u.Status) != filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out
}

func Companies(items []domain.Company, filter domain.ListFilter) []domain.Company {
	out := make([]domain.Company, 0, len(items))
	for _, c := range items {
		if !matchText(filter.Query, c.Name, c.Description) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Jobs filters by how recently a job was posted: week/month keep jobs whose
// posting date falls inside the trailing window.
func Jobs(items []domain.Job, filter domain.ListFilter, now time.Time) []domain.Job {
	cutoff, dated := dateCutoff(filter.Date, now)
	out := make([]domain.Job, 0, len(items))
	for _, j := range items {
		if !matchText(filter.Query, j.Title, j.CompanyName, j.Location) {
			continue
		}
		if dated && !j.PostedDate.After(cutoff) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// Events reinterprets week/month as "still upcoming": event dates are
// compared forward against now, not against a trailing window. This
// asymmetry with Jobs is deliberate and carried over from the source.
func Events(items []domain.Event, filter domain.ListFilter, now time.Time) []domain.Event {
	upcoming := filter.Date == domain.DateWeek || filter.Date == domain.DateMonth
	out := make([]domain.Event, 0, len(items))
	for _, e := range items {
		if !matchText(filter.Query, e.Title, e.Organizer, e.Location) {
			continue
		}
		if upcoming && !e.Date.After(now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func Courses(items []domain.Course, filter domain.ListFilter) []domain.Course {
	out := make([]domain.Course, 0, len(items))
	for _, c := range items {
		if !matchCourse(filter.Query, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchCourse(query string, c domain.Course) bool {
	if matchText(query, c.Title) {
		return true
	}
	for _, tag := range c.Tags {
		if matchText(query, tag) && query != "" {
			return true
		}
	}
	return false
}
