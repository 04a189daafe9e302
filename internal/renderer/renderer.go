package renderer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/theme"
)

// Placeholder texts substituted for absent fields. Missing data is a
// presentation concern here, never an error.
const (
	PlaceholderName       = "Your Name"
	PlaceholderSummary    = "No summary provided."
	PlaceholderSkills     = "No skills listed."
	PlaceholderExperience = "No experience listed."
	PlaceholderProjects   = "No projects listed."
	PlaceholderEducation  = "No education listed."
)

// Render produces a complete, self-contained HTML document for a stored
// record. All user-supplied strings pass through html/template's contextual
// escaping. The function keeps no state between calls.
func Render(rec *portfolio.Record) (string, error) {
	// Profession is guaranteed to be a theme-table key; ForProfession falls
	// back to Default for anything else.
	t := theme.ForProfession(rec.Profile.Profession)

	vm := viewModel{
		Profile:    &rec.Profile,
		Picture:    pictureURL(rec.ProfilePictureURL),
		Name:       orPlaceholder(rec.Profile.PersonalInfo.Name, PlaceholderName),
		Summary:    orPlaceholder(rec.Profile.Summary, PlaceholderSummary),
		Background: template.CSS(t.Background),
		Primary:    template.CSS(t.PrimaryColor),
		Secondary:  template.CSS(t.SecondaryColor),
		Card:       template.CSS(t.Card),
		Font:       template.CSS(t.Font),
		Button:     template.CSS(t.ButtonStyle),
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, vm); err != nil {
		return "", fmt.Errorf("render portfolio page: %w", err)
	}
	return sb.String(), nil
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

// pictureURL admits the two shapes the assembler stores: an inline base64
// data URL and an absolute http(s) URL. html/template's sanitizer would
// reject the data: scheme, so validated values bypass it as template.URL;
// anything else renders no image at all.
func pictureURL(v string) template.URL {
	if _, _, ok := portfolio.DecodePictureDataURL(v); ok {
		return template.URL(v)
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return template.URL(v)
	}
	return ""
}

type viewModel struct {
	Profile *portfolio.Profile
	Picture template.URL
	Name    string
	Summary string

	// Theme tokens are trusted static table values, typed for the CSS
	// context.
	Background template.CSS
	Primary    template.CSS
	Secondary  template.CSS
	Card       template.CSS
	Font       template.CSS
	Button     template.CSS
}

var pageTemplate = template.Must(template.New("portfolio").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}} — Portfolio</title>
<style>
  body { margin: 0; background: {{.Background}}; font-family: {{.Font}}; color: {{.Secondary}}; }
  .wrap { max-width: 860px; margin: 0 auto; padding: 48px 24px; }
  header { text-align: center; margin-bottom: 40px; }
  header img { width: 120px; height: 120px; border-radius: 50%; object-fit: cover; }
  h1 { color: {{.Primary}}; margin: 16px 0 8px; }
  h2 { color: {{.Primary}}; border-bottom: 2px solid {{.Primary}}; padding-bottom: 6px; margin-top: 36px; }
  .card { background: {{.Card}}; border-radius: 10px; padding: 20px; margin: 14px 0; box-shadow: 0 1px 3px rgba(0,0,0,0.12); }
  .muted { color: {{.Secondary}}; font-size: 0.9em; }
  .skill { display: inline-block; padding: 4px 12px; margin: 3px; border-radius: 16px; background: {{.Card}}; border: 1px solid {{.Primary}}; color: {{.Primary}}; font-size: 0.85em; }
  .links a { margin: 0 8px; color: {{.Primary}}; text-decoration: none; }
  .btn { display: inline-block; padding: 8px 18px; text-decoration: none; {{.Button}} }
  .empty { font-style: italic; }
</style>
</head>
<body>
<div class="wrap">
  <header>
    {{if .Picture}}<img src="{{.Picture}}" alt="{{.Name}}">{{end}}
    <h1>{{.Name}}</h1>
    <p>{{.Summary}}</p>
    <div class="links">
      {{if .Profile.PersonalInfo.Email}}<a href="mailto:{{.Profile.PersonalInfo.Email}}">Email</a>{{end}}
      {{if .Profile.PersonalInfo.Website}}<a href="{{.Profile.PersonalInfo.Website}}">Website</a>{{end}}
      {{if .Profile.PersonalInfo.LinkedIn}}<a href="{{.Profile.PersonalInfo.LinkedIn}}">LinkedIn</a>{{end}}
      {{if .Profile.PersonalInfo.GitHub}}<a href="{{.Profile.PersonalInfo.GitHub}}">GitHub</a>{{end}}
    </div>
    {{if .Profile.PersonalInfo.Phone}}<p class="muted">{{.Profile.PersonalInfo.Phone}}</p>{{end}}
  </header>

  <h2>Skills</h2>
  {{if .Profile.Skills}}
  <div>{{range .Profile.Skills}}<span class="skill">{{.}}</span>{{end}}</div>
  {{else}}<p class="empty">` + PlaceholderSkills + `</p>{{end}}

  <h2>Experience</h2>
  {{if .Profile.Experience}}
  {{range .Profile.Experience}}
  <div class="card">
    <strong>{{.Role}}</strong> — {{.Company}}
    <div class="muted">{{.Dates}}</div>
    {{if .Description}}<ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
  {{else}}<p class="empty">` + PlaceholderExperience + `</p>{{end}}

  <h2>Projects</h2>
  {{if .Profile.Projects}}
  {{range .Profile.Projects}}
  <div class="card">
    <strong>{{.Title}}</strong>
    <p>{{.Description}}</p>
    {{if .Link}}<a class="btn" href="{{.Link}}">View Project</a>{{end}}
  </div>
  {{end}}
  {{else}}<p class="empty">` + PlaceholderProjects + `</p>{{end}}

  <h2>Education</h2>
  {{if .Profile.Education}}
  {{range .Profile.Education}}
  <div class="card">
    <strong>{{.Degree}}</strong> — {{.Institution}}
    <div class="muted">{{.Dates}}</div>
  </div>
  {{end}}
  {{else}}<p class="empty">` + PlaceholderEducation + `</p>{{end}}
</div>
</body>
</html>
`))
