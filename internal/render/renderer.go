package render

import (
	"bytes"
	"embed"
	"html/template"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mode selects preview or print output. The two produce identical markup;
// print additionally fires the browser's print dialog on load.
type Mode string

const (
	ModePreview Mode = "preview"
	ModePrint   Mode = "print"
)

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

type renderData struct {
	Resume *domain.Resume
	Preset Preset
	// BodyFont bypasses the CSS value filter, which rejects quoted
	// font-family lists. Presets are static, never user input.
	BodyFont template.CSS
	Print    bool
}

// Render produces the full HTML document for a resume. Sections appear in
// a fixed order (header, summary, experience, education, skills, projects)
// and empty sections are omitted entirely.
func (r *Renderer) Render(resume *domain.Resume, mode Mode) ([]byte, error) {
	preset, ok := Presets[resume.Template]
	if !ok {
		return nil, apperror.BadRequest("Unknown resume template")
	}

	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "resume.html", renderData{
		Resume:   resume,
		Preset:   preset,
		BodyFont: template.CSS(preset.BodyFont),
		Print:    mode == ModePrint,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}
