package theme

// Theme is an immutable bundle of styling tokens selected by profession.
type Theme struct {
	Name           string `json:"name"`
	Background     string `json:"background"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Card           string `json:"card"`
	Font           string `json:"font"`
	ButtonStyle    string `json:"button_style"`
}

// DefaultProfession is the fallback key for unknown or missing
// classifications. It is always present in the table.
const DefaultProfession = "Default"

// Professions the classifier is allowed to return, beside Default.
var KnownProfessions = []string{
	"Software Developer",
	"Designer",
	"Marketing",
	"Data Scientist",
}

var themes = map[string]Theme{
	"Software Developer": {
		Name:           "Developer Dark",
		Background:     "#0d1117",
		PrimaryColor:   "#58a6ff",
		SecondaryColor: "#8b949e",
		Card:           "#161b22",
		Font:           "'JetBrains Mono', monospace",
		ButtonStyle:    "background:#238636;color:#ffffff;border-radius:6px;",
	},
	"Designer": {
		Name:           "Creative Vibrant",
		Background:     "linear-gradient(135deg, #fdfbfb 0%, #ebedee 100%)",
		PrimaryColor:   "#e91e63",
		SecondaryColor: "#9c27b0",
		Card:           "#ffffff",
		Font:           "'Poppins', sans-serif",
		ButtonStyle:    "background:#e91e63;color:#ffffff;border-radius:24px;",
	},
	"Marketing": {
		Name:           "Marketing Bold",
		Background:     "#fff8f0",
		PrimaryColor:   "#ff6b35",
		SecondaryColor: "#004e89",
		Card:           "#ffffff",
		Font:           "'Montserrat', sans-serif",
		ButtonStyle:    "background:#ff6b35;color:#ffffff;border-radius:8px;",
	},
	"Data Scientist": {
		Name:           "Analyst Deep",
		Background:     "#0f172a",
		PrimaryColor:   "#38bdf8",
		SecondaryColor: "#94a3b8",
		Card:           "#1e293b",
		Font:           "'Inter', sans-serif",
		ButtonStyle:    "background:#0ea5e9;color:#ffffff;border-radius:6px;",
	},
	DefaultProfession: {
		Name:           "Professional Blue",
		Background:     "#f4f7fb",
		PrimaryColor:   "#1d4ed8",
		SecondaryColor: "#64748b",
		Card:           "#ffffff",
		Font:           "'Roboto', sans-serif",
		ButtonStyle:    "background:#1d4ed8;color:#ffffff;border-radius:6px;",
	},
}

// ForProfession returns the theme for a known profession label, or the
// Default theme for anything else (empty and malformed labels included).
func ForProfession(label string) Theme {
	if t, ok := themes[label]; ok {
		return t
	}
	return themes[DefaultProfession]
}

// IsKnown reports whether label is a key in the theme table.
func IsKnown(label string) bool {
	_, ok := themes[label]
	return ok
}
