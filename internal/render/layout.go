package render

import (
	"fmt"
	"sort"

	"resume-studio/internal/model"
)

// TemplateID selects one of the built-in visual layouts.
type TemplateID string

const (
	TemplateCompact      TemplateID = "compact"
	TemplateProfessional TemplateID = "professional"
	TemplateVisual       TemplateID = "visual"
	TemplateGlobal       TemplateID = "global"
	TemplateModern       TemplateID = "modern"
	TemplateClassic      TemplateID = "classic"
	TemplateMinimalist   TemplateID = "minimalist"
	TemplateExecutive    TemplateID = "executive"
	TemplateSwiss        TemplateID = "swiss"
	TemplateElegant      TemplateID = "elegant"
	TemplateCreative     TemplateID = "creative"
	TemplateTech         TemplateID = "tech"
	TemplateInfographic  TemplateID = "infographic"
	TemplateStartup      TemplateID = "startup"
	TemplateArtistic     TemplateID = "artistic"
	TemplateAcademic     TemplateID = "academic"
	TemplateMetro        TemplateID = "metro"
	TemplateSky          TemplateID = "sky"
	TemplateVerde        TemplateID = "verde"
	TemplateNavy         TemplateID = "navy"
)

// ColumnRole marks which column of a layout receives custom sections.
type ColumnRole string

const (
	RoleMain    ColumnRole = "main"
	RoleSidebar ColumnRole = "sidebar"
)

// Font is the typographic register of a template.
type Font string

const (
	FontSans    Font = "sans"
	FontSerif   Font = "serif"
	FontDisplay Font = "display"
)

// ColumnSpec assigns standard sections to one column. Span is a relative
// width unit (a 1/2 split renders as sidebar+main).
type ColumnSpec struct {
	Role     ColumnRole
	Span     int
	Sections []string
}

// Layout is the declarative configuration that drives the renderer. Every
// template is one of these; there is a single rendering path.
type Layout struct {
	Font        Font
	Accent      string // CSS color token
	HeavyHeader bool   // black-weight name/heading treatment
	DarkSidebar bool
	ShowAvatar  bool // initials placeholder in the header or sidebar

	// Per-section decorations.
	Timeline     bool // experience entries carry timeline markers
	SkillPills   bool // skills as colored pills instead of plain lists
	LanguageBars bool // language proficiency as progress bars
	ProjectCards bool // projects in bordered cards

	Columns []ColumnSpec
}

var sectionTitles = map[string]string{
	model.SectionSummary:        "Summary",
	model.SectionExperience:     "Experience",
	model.SectionEducation:      "Education",
	model.SectionSkills:         "Skills",
	model.SectionProjects:       "Projects",
	model.SectionCertifications: "Certifications",
	model.SectionLanguages:      "Languages",
}

// single is the common one-column ordering.
func single(sections ...string) []ColumnSpec {
	return []ColumnSpec{{Role: RoleMain, Span: 1, Sections: sections}}
}

var defaultMain = []string{
	model.SectionSummary, model.SectionExperience, model.SectionProjects, model.SectionEducation,
}

var defaultSide = []string{
	model.SectionSkills, model.SectionLanguages, model.SectionCertifications,
}

func sidebarLeft(sidebar, main []string) []ColumnSpec {
	return []ColumnSpec{
		{Role: RoleSidebar, Span: 1, Sections: sidebar},
		{Role: RoleMain, Span: 2, Sections: main},
	}
}

func sidebarRight(sidebar, main []string) []ColumnSpec {
	return []ColumnSpec{
		{Role: RoleMain, Span: 2, Sections: main},
		{Role: RoleSidebar, Span: 1, Sections: sidebar},
	}
}

var layouts = map[TemplateID]Layout{
	TemplateCompact: {
		Font: FontSans, Accent: "#334155", SkillPills: true,
		Columns: []ColumnSpec{
			{Role: RoleSidebar, Span: 1, Sections: []string{model.SectionSkills, model.SectionLanguages}},
			{Role: RoleMain, Span: 2, Sections: []string{model.SectionSummary, model.SectionExperience, model.SectionProjects}},
			{Role: RoleSidebar, Span: 1, Sections: []string{model.SectionEducation, model.SectionCertifications}},
		},
	},
	TemplateProfessional: {
		Font: FontSans, Accent: "#1e293b",
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionProjects,
			model.SectionSkills, model.SectionEducation, model.SectionCertifications, model.SectionLanguages),
	},
	TemplateVisual: {
		Font: FontSans, Accent: "#3b82f6", DarkSidebar: true, ShowAvatar: true,
		Timeline: true, SkillPills: true, LanguageBars: true, ProjectCards: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateGlobal: {
		Font: FontSerif, Accent: "#0f172a",
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionEducation,
			model.SectionSkills, model.SectionProjects, model.SectionCertifications, model.SectionLanguages),
	},
	TemplateModern: {
		Font: FontSans, Accent: "#0ea5e9", SkillPills: true, LanguageBars: true,
		Columns: sidebarRight(defaultSide, defaultMain),
	},
	TemplateClassic: {
		Font: FontSerif, Accent: "#1f2937",
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionEducation,
			model.SectionProjects, model.SectionSkills, model.SectionCertifications, model.SectionLanguages),
	},
	TemplateMinimalist: {
		Font: FontSans, Accent: "#525252",
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionProjects,
			model.SectionEducation, model.SectionSkills, model.SectionLanguages, model.SectionCertifications),
	},
	TemplateExecutive: {
		Font: FontSerif, Accent: "#111827", HeavyHeader: true,
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionEducation,
			model.SectionCertifications, model.SectionSkills, model.SectionProjects, model.SectionLanguages),
	},
	TemplateSwiss: {
		Font: FontSans, Accent: "#dc2626", HeavyHeader: true,
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionProjects,
			model.SectionSkills, model.SectionEducation, model.SectionLanguages, model.SectionCertifications),
	},
	TemplateElegant: {
		Font: FontSerif, Accent: "#78716c", LanguageBars: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateCreative: {
		Font: FontDisplay, Accent: "#9333ea", ShowAvatar: true, SkillPills: true, ProjectCards: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateTech: {
		Font: FontSans, Accent: "#16a34a", SkillPills: true, ProjectCards: true,
		Columns: sidebarRight(defaultSide,
			[]string{model.SectionSummary, model.SectionExperience, model.SectionProjects, model.SectionEducation}),
	},
	TemplateInfographic: {
		Font: FontSans, Accent: "#f59e0b", ShowAvatar: true,
		Timeline: true, SkillPills: true, LanguageBars: true, ProjectCards: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateStartup: {
		Font: FontSans, Accent: "#6366f1", HeavyHeader: true, ProjectCards: true,
		Columns: single(model.SectionSummary, model.SectionExperience, model.SectionProjects,
			model.SectionSkills, model.SectionEducation, model.SectionCertifications, model.SectionLanguages),
	},
	TemplateArtistic: {
		Font: FontDisplay, Accent: "#db2777", ShowAvatar: true, SkillPills: true,
		Columns: sidebarRight(defaultSide, defaultMain),
	},
	TemplateAcademic: {
		Font: FontSerif, Accent: "#1e3a8a",
		Columns: single(model.SectionSummary, model.SectionEducation, model.SectionExperience,
			model.SectionProjects, model.SectionCertifications, model.SectionSkills, model.SectionLanguages),
	},
	TemplateMetro: {
		Font: FontSans, Accent: "#0891b2", HeavyHeader: true, SkillPills: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateSky: {
		Font: FontSans, Accent: "#38bdf8", SkillPills: true, LanguageBars: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateVerde: {
		Font: FontSans, Accent: "#15803d", SkillPills: true, LanguageBars: true,
		Columns: sidebarLeft(defaultSide, defaultMain),
	},
	TemplateNavy: {
		Font: FontSerif, Accent: "#1e40af", DarkSidebar: true, Timeline: true, LanguageBars: true,
		Columns: sidebarRight(defaultSide, defaultMain),
	},
}

// LookupLayout resolves a template id to its layout configuration.
func LookupLayout(id TemplateID) (Layout, error) {
	l, ok := layouts[id]
	if !ok {
		return Layout{}, fmt.Errorf("unknown template %q", id)
	}
	return l, nil
}

// Templates returns every known template id, sorted for stable listings.
func Templates() []TemplateID {
	ids := make([]TemplateID, 0, len(layouts))
	for id := range layouts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
