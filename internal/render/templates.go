package render

// Preset is the visual identity of a resume template. Layout is shared
// across all presets; only typography and color change.
type Preset struct {
	Name          string `json:"name"`
	Label         string `json:"label"`
	Description   string `json:"description"`
	AccentColor   string `json:"accentColor"`
	HeadingColor  string `json:"headingColor"`
	HeadingWeight int    `json:"headingWeight"`
	BodyFont      string `json:"bodyFont"`
}

// Presets holds the six selectable templates, keyed by name.
var Presets = map[string]Preset{
	"modern": {
		Name:          "modern",
		Label:         "Modern",
		Description:   "Clean lines with a blue accent",
		AccentColor:   "#2563eb",
		HeadingColor:  "#1e3a5f",
		HeadingWeight: 600,
		BodyFont:      "'Inter', 'Helvetica Neue', sans-serif",
	},
	"classic": {
		Name:          "classic",
		Label:         "Classic",
		Description:   "Traditional serif layout",
		AccentColor:   "#374151",
		HeadingColor:  "#111827",
		HeadingWeight: 700,
		BodyFont:      "'Georgia', 'Times New Roman', serif",
	},
	"creative": {
		Name:          "creative",
		Label:         "Creative",
		Description:   "Bold purple styling for design roles",
		AccentColor:   "#7c3aed",
		HeadingColor:  "#4c1d95",
		HeadingWeight: 800,
		BodyFont:      "'Poppins', 'Segoe UI', sans-serif",
	},
	"minimal": {
		Name:          "minimal",
		Label:         "Minimal",
		Description:   "Monochrome with generous whitespace",
		AccentColor:   "#525252",
		HeadingColor:  "#171717",
		HeadingWeight: 400,
		BodyFont:      "'Helvetica Neue', Arial, sans-serif",
	},
	"corporate": {
		Name:          "corporate",
		Label:         "Corporate",
		Description:   "Conservative navy for business profiles",
		AccentColor:   "#1e40af",
		HeadingColor:  "#1e293b",
		HeadingWeight: 700,
		BodyFont:      "'Calibri', 'Segoe UI', sans-serif",
	},
	"tech": {
		Name:          "tech",
		Label:         "Tech",
		Description:   "Monospace accents, projects up front",
		AccentColor:   "#059669",
		HeadingColor:  "#064e3b",
		HeadingWeight: 600,
		BodyFont:      "'JetBrains Mono', 'Fira Code', monospace",
	},
}

// PresetList returns the presets in a stable display order.
func PresetList() []Preset {
	names := []string{"modern", "classic", "creative", "minimal", "corporate", "tech"}
	out := make([]Preset, 0, len(names))
	for _, n := range names {
		out = append(out, Presets[n])
	}
	return out
}
