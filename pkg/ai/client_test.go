package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"resume-studio/internal/model"
)

func TestDecodeBase64Payload(t *testing.T) {
	raw, err := decodeBase64Payload("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	raw, err = decodeBase64Payload("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	_, err = decodeBase64Payload("not base64!!")
	assert.Error(t, err)
}

func TestEnsureCustomSectionIDs(t *testing.T) {
	r := &model.ResumeData{CustomSections: []model.CustomSection{
		{ID: "awards", Title: "Awards"},
		{ID: "", Title: "Volunteering"},
		{ID: "awards", Title: "More Awards"},
	}}
	ensureCustomSectionIDs(r)

	assert.Equal(t, "awards", r.CustomSections[0].ID)
	assert.NotEmpty(t, r.CustomSections[1].ID)
	assert.NotEqual(t, "awards", r.CustomSections[2].ID)
	assert.NotEqual(t, r.CustomSections[1].ID, r.CustomSections[2].ID)
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{
			{Text: "{\"fullName\":"},
			{InlineData: &genai.Blob{Data: []byte{1}}},
			{Text: "\"A\"}"},
		}},
	}}}
	assert.Equal(t, `{"fullName":"A"}`, extractText(resp))
}
