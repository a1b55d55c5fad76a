package render

import (
	"strings"

	"resume-studio/internal/model"
)

// Visibility controls which sections appear in the output. Keys missing
// from the map count as visible; the zero value shows everything.
type Visibility map[string]bool

// Visible reports the effective flag for a section key.
func (v Visibility) Visible(key string) bool {
	if v == nil {
		return true
	}
	if on, ok := v[key]; ok {
		return on
	}
	return true
}

// Render builds the layout tree for one resume under one template. It is a
// pure function: no clock, no randomness, no mutation of data, so identical
// inputs always yield identical documents.
func Render(data *model.ResumeData, id TemplateID, vis Visibility) (*Document, error) {
	layout, err := LookupLayout(id)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Template: id,
		Layout:   layout,
		Header:   buildHeader(data),
	}

	mainIdx := -1
	for _, spec := range layout.Columns {
		col := Column{Role: spec.Role, Span: spec.Span}
		for _, key := range spec.Sections {
			if !standardVisible(data, key, vis) {
				continue
			}
			col.Sections = append(col.Sections, buildStandard(data, key, layout))
		}
		doc.Columns = append(doc.Columns, col)
		if spec.Role == RoleMain && mainIdx < 0 {
			mainIdx = len(doc.Columns) - 1
		}
	}

	// Custom sections come after the last standard section, in array order.
	if mainIdx >= 0 {
		for _, cs := range data.CustomSections {
			if !vis.Visible(cs.ID) || len(cs.Items) == 0 {
				continue
			}
			doc.Columns[mainIdx].Sections = append(doc.Columns[mainIdx].Sections, buildCustom(cs))
		}
	}

	return doc, nil
}

func buildHeader(data *model.ResumeData) Header {
	h := Header{
		FullName: data.FullName,
		JobTitle: data.JobTitle,
		Initials: model.Initials(data.FullName),
	}
	fields := []ContactField{
		{Kind: "email", Value: data.Contact.Email},
		{Kind: "phone", Value: data.Contact.Phone},
		{Kind: "location", Value: data.Contact.Location},
		{Kind: "linkedin", Value: stripScheme(data.Contact.LinkedIn)},
		{Kind: "website", Value: stripScheme(data.Contact.Website)},
	}
	for _, f := range fields {
		if f.Value != "" {
			h.Contact = append(h.Contact, f)
		}
	}
	return h
}

// standardVisible applies the section suppression rule: the explicit flag
// AND a non-empty backing collection for array-backed sections.
func standardVisible(data *model.ResumeData, key string, vis Visibility) bool {
	if !vis.Visible(key) {
		return false
	}
	return data.SectionLen(key) > 0
}

func buildStandard(data *model.ResumeData, key string, layout Layout) Section {
	s := Section{Key: key, Title: sectionTitles[key]}
	switch key {
	case model.SectionSummary:
		s.Kind = KindText
		s.Text = data.Summary
	case model.SectionExperience:
		s.Kind = KindEntries
		if layout.Timeline {
			s.Kind = KindTimeline
		}
		for _, e := range data.Experience {
			s.Entries = append(s.Entries, Entry{
				Title:    e.Role,
				Subtitle: e.Company,
				Date:     joinDates(e.StartDate, e.EndDate),
				Bullets:  append([]string(nil), e.Description...),
			})
		}
	case model.SectionEducation:
		s.Kind = KindEntries
		for _, e := range data.Education {
			s.Entries = append(s.Entries, Entry{Title: e.Institution, Subtitle: e.Degree, Date: e.Year})
		}
	case model.SectionSkills:
		s.Kind = KindLists
		if layout.SkillPills {
			s.Kind = KindTags
		}
		for _, g := range data.Skills {
			s.Groups = append(s.Groups, TagGroup{Category: g.Category, Items: append([]string(nil), g.Items...)})
		}
	case model.SectionProjects:
		s.Kind = KindEntries
		if layout.ProjectCards {
			s.Kind = KindCards
		}
		for _, p := range data.Projects {
			s.Entries = append(s.Entries, Entry{
				Title:    p.Name,
				Subtitle: p.Technologies,
				Link:     p.Link,
				Bullets:  append([]string(nil), p.Description...),
			})
		}
	case model.SectionCertifications:
		s.Kind = KindEntries
		for _, c := range data.Certifications {
			s.Entries = append(s.Entries, Entry{Title: c.Name, Subtitle: c.Issuer, Date: c.Year})
		}
	case model.SectionLanguages:
		if layout.LanguageBars {
			s.Kind = KindBars
			for _, l := range data.Languages {
				s.Bars = append(s.Bars, Bar{Label: l.Language, Level: l.Proficiency, Percent: proficiencyPercent(l.Proficiency)})
			}
		} else {
			s.Kind = KindEntries
			for _, l := range data.Languages {
				s.Entries = append(s.Entries, Entry{Title: l.Language, Subtitle: l.Proficiency})
			}
		}
	}
	return s
}

func buildCustom(cs model.CustomSection) Section {
	s := Section{Key: cs.ID, Title: cs.Title, Kind: KindEntries}
	for _, it := range cs.Items {
		s.Entries = append(s.Entries, Entry{
			Title:    it.Title,
			Subtitle: it.Subtitle,
			Date:     it.Date,
			Bullets:  append([]string(nil), it.Description...),
		})
	}
	return s
}

// proficiencyPercent maps a free-text proficiency label onto a bar width.
// Display guesswork only: "Native" and "Advanced" are recognized, anything
// else falls back to 60.
func proficiencyPercent(p string) int {
	switch {
	case strings.Contains(p, "Native"):
		return 100
	case strings.Contains(p, "Advanced"):
		return 80
	default:
		return 60
	}
}

func joinDates(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}

func stripScheme(u string) string {
	u = strings.TrimPrefix(u, "https://")
	return strings.TrimPrefix(u, "http://")
}
