package session

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/model"
)

func TestDefaults(t *testing.T) {
	s := New()

	assert.True(t, s.Open(model.SectionPersonal))
	assert.True(t, s.Open(model.SectionSummary))
	assert.True(t, s.Open(model.SectionExperience))
	assert.True(t, s.Open(model.SectionSkills))
	assert.False(t, s.Open(model.SectionEducation))
	assert.False(t, s.Open(model.SectionProjects))

	vis := s.Visibility()
	for _, key := range model.StandardSections {
		assert.True(t, vis.Visible(key), "section %s should start visible", key)
	}
	// the sample resume ships one custom section; its state is seeded
	assert.True(t, vis.Visible("awards"))
	assert.True(t, s.Open("awards"))
}

func TestToggles(t *testing.T) {
	s := New()

	assert.False(t, s.ToggleOpen(model.SectionSummary))
	assert.True(t, s.ToggleOpen(model.SectionSummary))

	assert.False(t, s.ToggleVisible(model.SectionProjects))
	assert.False(t, s.Visibility().Visible(model.SectionProjects))
	assert.True(t, s.ToggleVisible(model.SectionProjects))

	// a key never seen before counts as visible, so one toggle hides it
	assert.False(t, s.ToggleVisible("never-seen"))
}

func TestUpdateIsAtomic(t *testing.T) {
	s := New()
	before := s.Resume()

	err := s.Update(func(r *model.ResumeData) error {
		r.FullName = "Broken Mid-Edit"
		r.Experience = nil
		return errors.New("validation failed")
	})
	require.Error(t, err)
	assert.Equal(t, before, s.Resume(), "failed update must leave the resume untouched")

	require.NoError(t, s.Update(func(r *model.ResumeData) error {
		r.Summary = "rewritten"
		return nil
	}))
	assert.Equal(t, "rewritten", s.Resume().Summary)
}

func TestResumeReturnsACopy(t *testing.T) {
	s := New()
	snap := s.Resume()
	snap.FullName = "Mallory"
	snap.Experience[0].Description[0] = "tampered"

	current := s.Resume()
	assert.Equal(t, "James Carter", current.FullName)
	assert.NotEqual(t, "tampered", current.Experience[0].Description[0])
}

func TestAddAndRemoveCustomSection(t *testing.T) {
	s := New()

	cs := s.AddCustomSection("Volunteering")
	assert.NotEmpty(t, cs.ID)
	assert.True(t, s.Open(cs.ID))
	assert.True(t, s.Visibility().Visible(cs.ID))
	require.NotNil(t, s.Resume().CustomSectionByID(cs.ID))

	require.True(t, s.RemoveCustomSection(cs.ID))
	assert.Nil(t, s.Resume().CustomSectionByID(cs.ID))
	_, tracked := s.OpenSections()[cs.ID]
	assert.False(t, tracked)
	// after removal the id behaves like any unknown key: visible
	assert.True(t, s.Visibility().Visible(cs.ID))

	assert.False(t, s.RemoveCustomSection("nope"))
}

func TestReplaceReconcilesCustomState(t *testing.T) {
	s := New()

	next := model.DefaultResume()
	next.CustomSections = []model.CustomSection{{
		ID: "publications", Title: "Publications",
		Items: []model.CustomSectionItem{{Title: "Paper", Description: []string{"x"}}},
	}}
	s.Replace(next)

	assert.True(t, s.Visibility().Visible("publications"))
	assert.True(t, s.Open("publications"))
	_, tracked := s.OpenSections()["awards"]
	assert.False(t, tracked, "state of removed custom sections is dropped")
}

func TestBusyScopes(t *testing.T) {
	s := New()

	require.NoError(t, s.BeginGenerate())
	assert.ErrorIs(t, s.BeginGenerate(), ErrBusy)
	s.EndGenerate()
	require.NoError(t, s.BeginGenerate())
	s.EndGenerate()

	require.NoError(t, s.BeginImprove("summary"))
	assert.ErrorIs(t, s.BeginImprove("summary"), ErrBusy)
	// a different field is an independent scope
	require.NoError(t, s.BeginImprove("exp-0"))
	s.EndImprove("summary")
	require.NoError(t, s.BeginImprove("summary"))

	generating, improving := s.Busy()
	assert.False(t, generating)
	assert.ElementsMatch(t, []string{"summary", "exp-0"}, improving)
}
