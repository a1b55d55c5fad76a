package render

// Document is the rendered layout tree: a header plus one to three columns
// of sections. It carries only display strings; optional fields that were
// absent in the source data are simply empty here and produce no markup.
type Document struct {
	Template TemplateID
	Layout   Layout
	Header   Header
	Columns  []Column
}

// Header is the name/title/contact block. It renders on every template;
// individual contact fields are dropped when empty but the block itself is
// unconditional.
type Header struct {
	FullName string
	JobTitle string
	Initials string
	Contact  []ContactField
}

type ContactField struct {
	Kind  string // email, phone, location, linkedin, website
	Value string
}

type Column struct {
	Role     ColumnRole
	Span     int
	Sections []Section
}

// SectionKind is the resolved presentation of a section after the layout's
// decoration flags have been applied.
type SectionKind string

const (
	KindText     SectionKind = "text"     // summary
	KindEntries  SectionKind = "entries"  // plain dated entries
	KindTimeline SectionKind = "timeline" // entries with timeline markers
	KindCards    SectionKind = "cards"    // entries in bordered cards
	KindTags     SectionKind = "tags"     // skill groups as pills
	KindLists    SectionKind = "lists"    // skill groups as plain lists
	KindBars     SectionKind = "bars"     // languages with progress bars
)

type Section struct {
	Key     string // standard key or custom-section id
	Title   string
	Kind    SectionKind
	Text    string     // KindText only
	Entries []Entry    // entry-shaped kinds
	Groups  []TagGroup // KindTags / KindLists
	Bars    []Bar      // KindBars only
}

// Entry is the shared shape of experience, education, project,
// certification and custom-section items.
type Entry struct {
	Title    string
	Subtitle string
	Date     string
	Link     string
	Bullets  []string
}

type TagGroup struct {
	Category string
	Items    []string
}

type Bar struct {
	Label   string
	Level   string
	Percent int
}
