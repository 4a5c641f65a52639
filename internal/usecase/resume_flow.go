package usecase

import "go-careerhub-backend/internal/domain"

// SectionOrder returns the builder's section sequence for a role. The
// builder is always re-enterable; there is no terminal state.
func SectionOrder(role domain.Role) []domain.ResumeSection {
	switch role {
	case domain.RoleStudent:
		return []domain.ResumeSection{
			domain.SectionPersonal,
			domain.SectionEducation,
			domain.SectionProjects,
			domain.SectionExperience,
			domain.SectionSkills,
		}
	case domain.RoleEmployer:
		return []domain.ResumeSection{
			domain.SectionPersonal,
			domain.SectionExperience,
			domain.SectionEducation,
			domain.SectionSkills,
			domain.SectionAchievements,
		}
	default:
		return []domain.ResumeSection{
			domain.SectionPersonal,
			domain.SectionExperience,
			domain.SectionEducation,
			domain.SectionSkills,
			domain.SectionProjects,
		}
	}
}

// Advance moves linearly through the section list. Moving next from the
// last section reports finished (save-and-finish) instead of advancing;
// moving back from the first stays put.
func Advance(order []domain.ResumeSection, current domain.ResumeSection, forward bool) (domain.ResumeSection, bool) {
	idx := 0
	for i, s := range order {
		if s == current {
			idx = i
			break
		}
	}

	if forward {
		if idx >= len(order)-1 {
			return current, true
		}
		return order[idx+1], false
	}
	if idx == 0 {
		return current, false
	}
	return order[idx-1], false
}
