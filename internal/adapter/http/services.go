package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"resume-studio/internal/model"
	"resume-studio/internal/render"
	"resume-studio/pkg/ai"
	"resume-studio/pkg/export"
)

type generateReq struct {
	Text     string `json:"text"`
	FileData string `json:"fileData"`
	MimeType string `json:"mimeType"`
}

// Generate bulk-populates the resume from free text and/or an uploaded
// file. On any failure the session data stays exactly as it was.
func (h *Handler) Generate(c *fiber.Ctx) error {
	if h.content == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(req.Text) == "" && req.FileData == "" {
		return badRequest(c, "provide a description or a file to generate from")
	}
	if req.FileData != "" && req.MimeType == "" {
		return badRequest(c, "mimeType is required with fileData")
	}

	if err := h.session.BeginGenerate(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "a generation is already running"})
	}
	defer h.session.EndGenerate()

	data, err := h.content.GenerateResume(c.Context(), ai.GenerateInput{
		Text:     req.Text,
		FileData: req.FileData,
		MimeType: req.MimeType,
	})
	if err != nil {
		h.logger.Warn("generation failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to generate resume: " + err.Error()})
	}

	h.session.Replace(data)
	return c.JSON(fiber.Map{"data": h.session.Resume()})
}

type improveReq struct {
	Text  string `json:"text" validate:"required"`
	Kind  string `json:"kind" validate:"required,oneof=summary experience project"`
	Field string `json:"field" validate:"required"`
}

// Improve rewrites one text block and, when the field addresses a known
// location (summary, exp-N, proj-N), patches it into the resume in one
// atomic update. On AI failure the original text is returned untouched and
// nothing is written.
func (h *Handler) Improve(c *fiber.Ctx) error {
	if h.content == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req improveReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.validate.Struct(&req); err != nil {
		return badRequest(c, "text, kind (summary|experience|project) and field are required")
	}

	if err := h.session.BeginImprove(req.Field); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "an improvement for " + req.Field + " is already running"})
	}
	defer h.session.EndImprove(req.Field)

	improved, err := h.content.ImproveText(c.Context(), req.Text, ai.TextKind(req.Kind))
	if err != nil || strings.TrimSpace(improved) == "" {
		// fall back to the caller's text; the field is never blanked
		return c.JSON(fiber.Map{"text": req.Text, "applied": false})
	}

	applied := h.applyImprovement(req.Field, improved) == nil
	return c.JSON(fiber.Map{"text": improved, "applied": applied})
}

// applyImprovement writes an improved block back into the resume. Bullet
// fields arrive newline-separated; leading bullet glyphs are stripped.
func (h *Handler) applyImprovement(field, improved string) error {
	return h.session.Update(func(r *model.ResumeData) error {
		switch {
		case field == model.SectionSummary:
			r.Summary = improved
		case strings.HasPrefix(field, "exp-"):
			idx, err := strconv.Atoi(strings.TrimPrefix(field, "exp-"))
			if err != nil || idx < 0 || idx >= len(r.Experience) {
				return errors.Errorf("no experience entry for field %q", field)
			}
			r.Experience[idx].Description = splitBullets(improved)
		case strings.HasPrefix(field, "proj-"):
			idx, err := strconv.Atoi(strings.TrimPrefix(field, "proj-"))
			if err != nil || idx < 0 || idx >= len(r.Projects) {
				return errors.Errorf("no project entry for field %q", field)
			}
			r.Projects[idx].Description = splitBullets(improved)
		default:
			return errors.Errorf("field %q is not patchable", field)
		}
		return nil
	})
}

func splitBullets(s string) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "•")
		l = strings.TrimPrefix(l, "-")
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

type imageEditReq struct {
	Image  string `json:"image" validate:"required"`
	Prompt string `json:"prompt" validate:"required"`
}

func (h *Handler) EditImage(c *fiber.Ctx) error {
	if h.content == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req imageEditReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.validate.Struct(&req); err != nil {
		return badRequest(c, "image and prompt are required")
	}

	edited, err := h.content.EditImage(c.Context(), req.Image, req.Prompt)
	if err != nil {
		status := fiber.StatusBadGateway
		if errors.Is(err, ai.ErrNoImage) {
			return c.Status(status).JSON(fiber.Map{"error": "the model returned no image"})
		}
		return c.Status(status).JSON(fiber.Map{"error": "image edit failed: " + err.Error()})
	}
	return c.JSON(fiber.Map{"image": edited, "mimeType": "image/png"})
}

// ExportPDF snapshots the current rendered document and converts it. A
// second call while one export runs is rejected, never queued behind a
// concurrent conversion.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	html, data, err := h.renderCurrent(c.Query("template", string(render.TemplateModern)))
	if err != nil {
		return badRequest(c, err.Error())
	}

	pdf, err := h.exporter.Export(c.Context(), html)
	switch {
	case errors.Is(err, export.ErrNotReady):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "the PDF backend is not ready; use the document export instead",
		})
	case errors.Is(err, export.ErrInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "an export is already running"})
	case err != nil:
		h.logger.Error("pdf export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "PDF conversion failed; use the document export instead",
		})
	}

	name := export.FileName(data.FullName, ".pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// ExportDoc produces the word-processor document synchronously.
func (h *Handler) ExportDoc(c *fiber.Ctx) error {
	data := h.session.Resume()
	doc, err := render.Render(data, render.TemplateID(c.Query("template", string(render.TemplateModern))), h.session.Visibility())
	if err != nil {
		return badRequest(c, err.Error())
	}
	body, err := render.BodyHTML(doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := export.WordDocument(body, data.FullName)
	if err != nil {
		return badRequest(c, err.Error())
	}

	name := export.FileName(data.FullName, ".doc")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, "application/msword")
	return c.Send(out)
}
