package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type ExperienceEntry struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Dates       string   `json:"dates"`
	Description []string `json:"description"`
}

type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
}

// Profile is the normalized result of extraction (or manual entry).
// Profession is always a key of the theme table; callers must fall back to
// "Default" before storing.
type Profile struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
	Projects     []ProjectEntry    `json:"projects"`
	Education    []EducationEntry  `json:"education"`
	Profession   string            `json:"profession"`
}

// Record is a persisted portfolio. ProfilePictureURL is either an inline
// data URL or a hosted image URL. Records are never deleted.
type Record struct {
	ShareID           uuid.UUID `json:"share_id"`
	Profile           Profile   `json:"portfolio_data"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	SelectedTheme     string    `json:"selected_theme"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, record *Record) error
	FindByID(ctx context.Context, shareID uuid.UUID) (*Record, error)
	Update(ctx context.Context, record *Record) error
	ListRecent(ctx context.Context, limit int) ([]*Record, error)
}
