package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	orig := DefaultResume()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.FullName = "Someone Else"
	clone.Contact.Email = "else@example.com"
	clone.Experience[0].Description[0] = "changed"
	clone.Skills[0].Items[0] = "changed"
	clone.CustomSections[0].Items[0].Title = "changed"

	fresh := DefaultResume()
	assert.Equal(t, fresh.FullName, orig.FullName)
	assert.Equal(t, fresh.Contact.Email, orig.Contact.Email)
	assert.Equal(t, fresh.Experience[0].Description[0], orig.Experience[0].Description[0])
	assert.Equal(t, fresh.Skills[0].Items[0], orig.Skills[0].Items[0])
	assert.Equal(t, fresh.CustomSections[0].Items[0].Title, orig.CustomSections[0].Items[0].Title)
}

func TestValidateAcceptsSample(t *testing.T) {
	doc, err := json.Marshal(DefaultResume())
	require.NoError(t, err)
	assert.NoError(t, Validate(doc))

	parsed, err := ParseResume(doc)
	require.NoError(t, err)
	assert.Equal(t, DefaultResume(), parsed)
}

func TestValidateRejectsBrokenDocuments(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"fullName":`,
		"missing contact":   `{"fullName":"A","jobTitle":"B","summary":"","experience":[],"education":[],"skills":[],"projects":[]}`,
		"wrong field type":  `{"fullName":42,"jobTitle":"B","contact":{"email":"","phone":"","location":""},"summary":"","experience":[],"education":[],"skills":[],"projects":[]}`,
		"custom without id": `{"fullName":"A","jobTitle":"B","contact":{"email":"","phone":"","location":""},"summary":"","experience":[],"education":[],"skills":[],"projects":[],"customSections":[{"title":"T","items":[]}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResume([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestSectionLen(t *testing.T) {
	r := DefaultResume()
	assert.Equal(t, 1, r.SectionLen(SectionSummary))
	assert.Equal(t, len(r.Experience), r.SectionLen(SectionExperience))
	assert.Equal(t, len(r.Languages), r.SectionLen(SectionLanguages))

	empty := &ResumeData{}
	// scalar sections count as 1 so only the visibility map suppresses them
	assert.Equal(t, 1, empty.SectionLen(SectionPersonal))
	assert.Equal(t, 1, empty.SectionLen(SectionSummary))
	assert.Equal(t, 0, empty.SectionLen(SectionProjects))
}

func TestCustomSectionByID(t *testing.T) {
	r := DefaultResume()
	require.NotNil(t, r.CustomSectionByID("awards"))
	assert.Nil(t, r.CustomSectionByID("missing"))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JC", Initials("James Carter"))
	assert.Equal(t, "JQP", Initials("Jane Q. Public"))
	assert.Equal(t, "S", Initials("  Solo  "))
	assert.Equal(t, "", Initials(""))
}
