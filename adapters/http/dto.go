package http

import (
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/theme"
)

// Profile DTOs mirror the persisted JSON shape; social fields accept a bare
// handle or a full URL and are normalized before storage.

type PersonalInfoDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type ExperienceEntryDTO struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Dates       string   `json:"dates"`
	Description []string `json:"description"`
}

type ProjectEntryDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type EducationEntryDTO struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
}

type ProfileDTO struct {
	PersonalInfo PersonalInfoDTO      `json:"personalInfo"`
	Summary      string               `json:"summary"`
	Skills       []string             `json:"skills"`
	Experience   []ExperienceEntryDTO `json:"experience"`
	Projects     []ProjectEntryDTO    `json:"projects"`
	Education    []EducationEntryDTO  `json:"education"`
	Profession   string               `json:"profession"`
}

type GeneratePortfolioRequest struct {
	ResumeText string      `json:"resumeText"`
	ManualData *ProfileDTO `json:"manualData"`
}

type UpdatePortfolioRequest struct {
	ProfileDTO
	ProfilePictureURL string `json:"profilePictureUrl"`
}

type PortfolioResponse struct {
	PortfolioID       string      `json:"portfolioId"`
	PortfolioData     ProfileDTO  `json:"portfolioData"`
	Theme             theme.Theme `json:"theme"`
	ProfilePictureURL string      `json:"profilePictureUrl"`
}

func (d *ProfileDTO) ToDomain() portfolio.Profile {
	p := portfolio.Profile{
		PersonalInfo: portfolio.PersonalInfo{
			Name:     d.PersonalInfo.Name,
			Email:    d.PersonalInfo.Email,
			Phone:    d.PersonalInfo.Phone,
			Website:  d.PersonalInfo.Website,
			LinkedIn: d.PersonalInfo.LinkedIn,
			GitHub:   d.PersonalInfo.GitHub,
		},
		Summary:    d.Summary,
		Skills:     d.Skills,
		Profession: d.Profession,
	}
	for _, e := range d.Experience {
		p.Experience = append(p.Experience, portfolio.ExperienceEntry(e))
	}
	for _, pr := range d.Projects {
		p.Projects = append(p.Projects, portfolio.ProjectEntry(pr))
	}
	for _, ed := range d.Education {
		p.Education = append(p.Education, portfolio.EducationEntry(ed))
	}
	return p
}

func ToProfileDTO(p portfolio.Profile) ProfileDTO {
	dto := ProfileDTO{
		PersonalInfo: PersonalInfoDTO{
			Name:     p.PersonalInfo.Name,
			Email:    p.PersonalInfo.Email,
			Phone:    p.PersonalInfo.Phone,
			Website:  p.PersonalInfo.Website,
			LinkedIn: p.PersonalInfo.LinkedIn,
			GitHub:   p.PersonalInfo.GitHub,
		},
		Summary:    p.Summary,
		Skills:     p.Skills,
		Profession: p.Profession,
	}
	for _, e := range p.Experience {
		dto.Experience = append(dto.Experience, ExperienceEntryDTO(e))
	}
	for _, pr := range p.Projects {
		dto.Projects = append(dto.Projects, ProjectEntryDTO(pr))
	}
	for _, ed := range p.Education {
		dto.Education = append(dto.Education, EducationEntryDTO(ed))
	}
	return dto
}

func ToPortfolioResponse(rec *portfolio.Record) PortfolioResponse {
	return PortfolioResponse{
		PortfolioID:       rec.ShareID.String(),
		PortfolioData:     ToProfileDTO(rec.Profile),
		Theme:             theme.ForProfession(rec.Profile.Profession),
		ProfilePictureURL: rec.ProfilePictureURL,
	}
}
