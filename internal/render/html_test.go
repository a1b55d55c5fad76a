package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/model"
)

func renderPage(t *testing.T, data *model.ResumeData, id TemplateID, vis Visibility) string {
	t.Helper()
	doc, err := Render(data, id, vis)
	require.NoError(t, err)
	html, err := HTML(doc)
	require.NoError(t, err)
	return html
}

func TestHTMLIsSelfContained(t *testing.T) {
	html := renderPage(t, model.DefaultResume(), TemplateVisual, nil)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "James Carter")
	assert.Contains(t, html, "Senior Financial Analyst")
	assert.Contains(t, html, `--accent: #3b82f6`)
}

func TestHTMLRendersEveryTemplate(t *testing.T) {
	data := model.DefaultResume()
	for _, id := range Templates() {
		html := renderPage(t, data, id, nil)
		assert.Contains(t, html, "tpl-"+string(id))
	}
}

func TestEmptyBulletProducesEmptyListItem(t *testing.T) {
	data := model.DefaultResume()
	data.Experience = []model.ExperienceItem{{
		Company: "Acme", Role: "Engineer", StartDate: "2020", EndDate: "2021",
		Description: []string{"A", "", "B"},
	}}

	html := renderPage(t, data, TemplateProfessional, nil)
	assert.Contains(t, html, "<li>A</li>")
	assert.Contains(t, html, "<li>B</li>")
	assert.Contains(t, html, "<li></li>", "empty bullet must render as an empty list item")
}

func TestOptionalFieldsProduceNoMarkup(t *testing.T) {
	data := model.DefaultResume()
	data.CustomSections = []model.CustomSection{{
		ID: "vol", Title: "Volunteering",
		Items: []model.CustomSectionItem{{Title: "Food Bank", Description: []string{"weekly"}}},
	}}

	html := renderPage(t, data, TemplateProfessional, nil)
	// the custom entry contributes neither a subtitle nor a date node
	volIdx := strings.Index(html, "Food Bank")
	require.Greater(t, volIdx, 0)
	tail := html[volIdx:]
	assert.NotContains(t, tail, "entry-subtitle")
	assert.NotContains(t, tail, "entry-date")
}

func TestAvatarOnlyOnAvatarTemplates(t *testing.T) {
	data := model.DefaultResume()
	assert.Contains(t, renderPage(t, data, TemplateVisual, nil), `class="avatar">JC<`)
	assert.NotContains(t, renderPage(t, data, TemplateClassic, nil), `class="avatar"`)
}

func TestEmptyNameRendersEmptyAvatar(t *testing.T) {
	data := model.DefaultResume()
	data.FullName = ""
	html := renderPage(t, data, TemplateVisual, nil)
	assert.Contains(t, html, `<div class="avatar"></div>`)
}

func TestBodyHTMLHasNoPageShell(t *testing.T) {
	doc, err := Render(model.DefaultResume(), TemplateModern, nil)
	require.NoError(t, err)
	body, err := BodyHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.NotContains(t, body, "<style>")
	assert.Contains(t, body, "James Carter")
}
