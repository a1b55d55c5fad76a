package model

import "strings"

// Go models that match resume.schema.json; the same shape is used for
// editing, AI generation and template rendering.

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type ExperienceItem struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// One bullet per element. Empty strings are legal and render as
	// blank bullets.
	Description []string `json:"description"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type ProjectItem struct {
	Name         string   `json:"name"`
	Technologies string   `json:"technologies"`
	Description  []string `json:"description"`
	Link         string   `json:"link,omitempty"`
}

type CertificationItem struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type LanguageItem struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type CustomSectionItem struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Date        string   `json:"date,omitempty"`
	Description []string `json:"description"`
}

// CustomSection is a user-defined block. The id is the stable key used by
// the visibility maps; it never changes once the section exists.
type CustomSection struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Items []CustomSectionItem `json:"items"`
}

type ResumeData struct {
	FullName       string              `json:"fullName"`
	JobTitle       string              `json:"jobTitle"`
	Contact        Contact             `json:"contact"`
	Summary        string              `json:"summary"`
	Experience     []ExperienceItem    `json:"experience"`
	Education      []EducationItem     `json:"education"`
	Skills         []SkillGroup        `json:"skills"`
	Projects       []ProjectItem       `json:"projects"`
	Certifications []CertificationItem `json:"certifications"`
	Languages      []LanguageItem      `json:"languages"`
	CustomSections []CustomSection     `json:"customSections,omitempty"`
}

// Standard section keys, in their canonical render order. "personal" is the
// header block and is never hideable.
const (
	SectionPersonal       = "personal"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
)

// StandardSections lists every hideable standard section key.
var StandardSections = []string{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
}

// SectionLen reports the length of the collection backing a standard
// section. Scalar sections (summary) count as 1 so they are only suppressed
// by the visibility map, never by emptiness.
func (r *ResumeData) SectionLen(key string) int {
	switch key {
	case SectionExperience:
		return len(r.Experience)
	case SectionEducation:
		return len(r.Education)
	case SectionSkills:
		return len(r.Skills)
	case SectionProjects:
		return len(r.Projects)
	case SectionCertifications:
		return len(r.Certifications)
	case SectionLanguages:
		return len(r.Languages)
	default:
		return 1
	}
}

// CustomSectionByID returns the custom section with the given id, or nil.
func (r *ResumeData) CustomSectionByID(id string) *CustomSection {
	for i := range r.CustomSections {
		if r.CustomSections[i].ID == id {
			return &r.CustomSections[i]
		}
	}
	return nil
}

// Initials builds the avatar placeholder text: the first rune of every
// whitespace-separated token of name, concatenated. Empty names yield an
// empty placeholder.
func Initials(name string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(name) {
		b.WriteRune([]rune(tok)[0])
	}
	return b.String()
}

// Clone returns a deep copy. Mutating flows build on a clone and swap the
// whole structure in afterwards, so a failed AI generation can never leave
// the live instance half-written.
func (r *ResumeData) Clone() *ResumeData {
	cp := *r
	cp.Experience = make([]ExperienceItem, len(r.Experience))
	for i, e := range r.Experience {
		e.Description = append([]string(nil), e.Description...)
		cp.Experience[i] = e
	}
	cp.Education = append([]EducationItem(nil), r.Education...)
	cp.Skills = make([]SkillGroup, len(r.Skills))
	for i, s := range r.Skills {
		s.Items = append([]string(nil), s.Items...)
		cp.Skills[i] = s
	}
	cp.Projects = make([]ProjectItem, len(r.Projects))
	for i, p := range r.Projects {
		p.Description = append([]string(nil), p.Description...)
		cp.Projects[i] = p
	}
	cp.Certifications = append([]CertificationItem(nil), r.Certifications...)
	cp.Languages = append([]LanguageItem(nil), r.Languages...)
	if r.CustomSections != nil {
		cp.CustomSections = make([]CustomSection, len(r.CustomSections))
		for i, cs := range r.CustomSections {
			items := make([]CustomSectionItem, len(cs.Items))
			for j, it := range cs.Items {
				it.Description = append([]string(nil), it.Description...)
				items[j] = it
			}
			cs.Items = items
			cp.CustomSections[i] = cs
		}
	}
	return &cp
}
