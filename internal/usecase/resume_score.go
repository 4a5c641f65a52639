package usecase

import (
	"math"

	"go-careerhub-backend/internal/domain"
)

// ScoreResume computes the completeness score (0..100). Each criterion adds
// to the numerator and the denominator so the weighting between sections is
// stable; the score is recomputed on every read, never cached.
func ScoreResume(r *domain.Resume, role domain.Role) int {
	num, den := 0, 0

	// Personal info: full contact block scores 2, name+email alone scores 1.
	den += 2
	p := r.Personal
	switch {
	case p.FullName != "" && p.Email != "" && p.Phone != "":
		num += 2
	case p.FullName != "" && p.Email != "":
		num++
	}

	// Experience: 2 when at least one entry is complete, 1 for any entry.
	den += 2
	if len(r.Experience) > 0 {
		if hasCompleteExperience(r.Experience) {
			num += 2
		} else {
			num++
		}
	}

	// Education weighs double for students. An incomplete entry earns half
	// the weight, floored; no entries earn nothing but the weight still
	// counts against the total.
	eduWeight := 1
	if role == domain.RoleStudent {
		eduWeight = 2
	}
	den += eduWeight
	if len(r.Education) > 0 {
		if hasCompleteEducation(r.Education) {
			num += eduWeight
		} else {
			num += eduWeight / 2
		}
	}

	// Skills: three or more score full marks.
	den += 2
	switch {
	case len(r.Skills) >= 3:
		num += 2
	case len(r.Skills) >= 1:
		num++
	}

	// Projects only count for students or the tech template; for everyone
	// else they are excluded from both sides of the ratio.
	if role == domain.RoleStudent || r.Template == "tech" {
		den += 2
		if len(r.Projects) > 0 {
			if hasCompleteProject(r.Projects) {
				num += 2
			} else {
				num++
			}
		}
	}

	// A template is always selected.
	num++
	den++

	// Summary bonus: a substantial summary adds one to both sides.
	if len(r.Summary) > 50 {
		num++
		den++
	}

	score := math.Round(100 * float64(num) / float64(den))
	return int(math.Min(100, score))
}

func hasCompleteExperience(entries []domain.Experience) bool {
	for _, e := range entries {
		if e.Position != "" && e.Company != "" && e.StartDate != "" {
			return true
		}
	}
	return false
}

func hasCompleteEducation(entries []domain.Education) bool {
	for _, e := range entries {
		if e.Institution != "" && e.Degree != "" {
			return true
		}
	}
	return false
}

func hasCompleteProject(entries []domain.Project) bool {
	for _, p := range entries {
		if p.Title != "" && p.Description != "" {
			return true
		}
	}
	return false
}
