// Package ai wraps the Gemini API behind the three content operations the
// builder needs: bulk resume generation, targeted text improvement and
// image editing. Callers treat it as a plain request/response service.
package ai

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"resume-studio/internal/model"
)

var (
	// ErrGenerationFailure means the model returned no parsable
	// structured output. The caller's data must stay untouched.
	ErrGenerationFailure = errors.New("model returned no usable structured output")
	// ErrNoImage means an image-edit response carried no image part.
	ErrNoImage = errors.New("no image returned")
)

// TextKind tags the section a text block belongs to so the improve prompt
// can reference it.
type TextKind string

const (
	KindSummary    TextKind = "summary"
	KindExperience TextKind = "experience"
	KindProject    TextKind = "project"
)

// GenerateInput feeds GenerateResume. Exactly one of Text and FileData must
// be meaningfully present; FileData is base64, optionally with a data: URL
// prefix.
type GenerateInput struct {
	Text     string
	FileData string
	MimeType string
}

type Client struct {
	genai      *genai.Client
	model      string
	imageModel string
	logger     *zap.Logger
}

type Config struct {
	APIKey     string
	Model      string // defaults to gemini-2.5-flash
	ImageModel string // defaults to gemini-2.5-flash-image
}

func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	m := cfg.Model
	if m == "" {
		m = "gemini-2.5-flash"
	}
	im := cfg.ImageModel
	if im == "" {
		im = "gemini-2.5-flash-image"
	}
	return &Client{genai: gc, model: m, imageModel: im, logger: logger}, nil
}

const generatePrompt = `Create a professional, ATS-friendly resume data structure based on the provided information.
Organize skills into logical categories (e.g., 'Languages & Databases', 'Tools', 'AI/ML').
Extract or infer projects, certifications, and languages if available.
If there is information about Volunteering, Awards, Publications, or other sections, add them to 'customSections' with an appropriate title.
Use professional action verbs for descriptions.
Ensure the JSON output strictly follows the schema.`

// GenerateResume asks the model for a full resume conforming to the
// ResumeData schema. The response is schema-constrained JSON; anything else
// is reported as ErrGenerationFailure.
func (c *Client) GenerateResume(ctx context.Context, in GenerateInput) (*model.ResumeData, error) {
	var parts []*genai.Part

	if in.FileData != "" {
		raw, err := decodeBase64Payload(in.FileData)
		if err != nil {
			return nil, errors.Wrap(err, "decode input file")
		}
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{
			MIMEType: in.MimeType,
			Data:     raw,
		}})
	}

	prompt := generatePrompt
	if in.Text != "" {
		prompt += "\n\nAdditional User Information:\n" + in.Text
	}
	parts = append(parts, &genai.Part{Text: prompt})

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   resumeSchema(),
	})
	if err != nil {
		c.logger.Error("resume generation failed", zap.Error(err))
		return nil, errors.Wrap(err, "generate resume")
	}

	text := extractText(resp)
	if text == "" {
		return nil, ErrGenerationFailure
	}

	data, err := model.ParseResume([]byte(text))
	if err != nil {
		c.logger.Warn("generated resume failed schema validation", zap.Error(err))
		return nil, errors.WithMessage(ErrGenerationFailure, err.Error())
	}

	ensureCustomSectionIDs(data)
	c.logger.Info("resume generated",
		zap.String("model", c.model),
		zap.Int("experience", len(data.Experience)),
		zap.Int("custom_sections", len(data.CustomSections)))
	return data, nil
}

// ImproveText rewrites one text block. Callers keep the original text on
// any error; this method never substitutes its own fallback.
func (c *Client) ImproveText(ctx context.Context, text string, kind TextKind) (string, error) {
	prompt := "Rewrite the following " + string(kind) + " text for a professional resume.\n" +
		"Make it concise, impact-oriented, and use strong action verbs.\n" +
		"Do not add any introductory or concluding remarks, just return the improved text.\n\n" +
		"Original Text:\n\"" + text + "\""

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}, nil)
	if err != nil {
		c.logger.Warn("improve text failed", zap.String("kind", string(kind)), zap.Error(err))
		return "", errors.Wrap(err, "improve text")
	}

	out := strings.TrimSpace(extractText(resp))
	if out == "" {
		return "", errors.New("empty improvement response")
	}
	return out, nil
}

// EditImage applies a natural-language instruction to a base64 image and
// returns the edited image as base64 PNG.
func (c *Client) EditImage(ctx context.Context, base64Image, prompt string) (string, error) {
	raw, err := decodeBase64Payload(base64Image)
	if err != nil {
		return "", errors.Wrap(err, "decode input image")
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.imageModel, []*genai.Content{
		{Parts: []*genai.Part{
			// uploads are re-declared as PNG for the request
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: raw}},
			{Text: prompt},
		}},
	}, nil)
	if err != nil {
		c.logger.Error("image edit failed", zap.Error(err))
		return "", errors.Wrap(err, "edit image")
	}

	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
	}
	return "", ErrNoImage
}

// decodeBase64Payload accepts raw base64 or a data: URL and returns the
// decoded bytes.
func decodeBase64Payload(s string) ([]byte, error) {
	if i := strings.Index(s, ","); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}

// ensureCustomSectionIDs backfills unique ids for custom sections the model
// emitted without one; ids are the stable visibility keys.
func ensureCustomSectionIDs(r *model.ResumeData) {
	seen := map[string]bool{}
	for i := range r.CustomSections {
		id := r.CustomSections[i].ID
		if id == "" || seen[id] {
			id = uuid.NewString()
			r.CustomSections[i].ID = id
		}
		seen[id] = true
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}
