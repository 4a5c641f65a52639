package render_test

import (
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *domain.Resume {
	return &domain.Resume{
		Personal: domain.PersonalInfo{
			FullName: "Student User",
			Title:    "Backend Intern",
			Email:    "student@demo.com",
			Location: "Berlin",
		},
		Summary: "Computer science student focused on backend systems.",
		Experience: []domain.Experience{
			{Position: "Backend Intern", Company: "Demo Company", StartDate: "2023-06", EndDate: "2023-09"},
		},
		Skills:   []string{"Go", "SQL"},
		Template: "modern",
	}
}

func TestRenderContainsSections(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	html, err := r.Render(sampleResume(), render.ModePreview)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Student User")
	assert.Contains(t, out, "Demo Company")
	assert.Contains(t, out, "<h2>Experience</h2>")
	assert.Contains(t, out, "<h2>Skills</h2>")
	assert.Contains(t, out, render.Presets["modern"].AccentColor)
}

func TestRenderOmitsEmptySections(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	resume := sampleResume()
	resume.Education = nil
	resume.Projects = nil

	html, err := r.Render(resume, render.ModePreview)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, "<h2>Education</h2>")
	assert.NotContains(t, out, "<h2>Projects</h2>")
}

func TestRenderPrintModeAddsTrigger(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	preview, err := r.Render(sampleResume(), render.ModePreview)
	require.NoError(t, err)
	printout, err := r.Render(sampleResume(), render.ModePrint)
	require.NoError(t, err)

	assert.NotContains(t, string(preview), "window.print()")
	assert.Contains(t, string(printout), "window.print()")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	resume := sampleResume()
	resume.Template = "vaporwave"

	_, err = r.Render(resume, render.ModePreview)
	assert.Error(t, err)
}

func TestPresetListStableAndDistinct(t *testing.T) {
	list := render.PresetList()
	require.Len(t, list, 6)
	assert.Equal(t, "modern", list[0].Name)

	colors := map[string]bool{}
	for _, p := range list {
		colors[p.AccentColor] = true
	}
	assert.Len(t, colors, 6)
}
