// Package http exposes the single-session resume builder as a JSON API:
// resume edits, section state, template previews, AI assistance and the
// export endpoints.
package http

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resume-studio/internal/model"
	"resume-studio/internal/render"
	"resume-studio/internal/session"
	"resume-studio/pkg/ai"
	"resume-studio/pkg/export"
)

// ContentService is the AI collaborator. It is fully external: handlers
// only pass data through and decide what happens to the session afterwards.
type ContentService interface {
	GenerateResume(ctx context.Context, in ai.GenerateInput) (*model.ResumeData, error)
	ImproveText(ctx context.Context, text string, kind ai.TextKind) (string, error)
	EditImage(ctx context.Context, base64Image, prompt string) (string, error)
}

type Handler struct {
	session  *session.Session
	content  ContentService
	exporter *export.PDFExporter
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(sess *session.Session, content ContentService, exporter *export.PDFExporter, logger *zap.Logger) *Handler {
	return &Handler{
		session:  sess,
		content:  content,
		exporter: exporter,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register mounts every route under /api.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/resume", h.GetResume)
	api.Put("/resume", h.ReplaceResume)
	api.Put("/resume/sections/:key", h.ReplaceSection)
	api.Post("/resume/custom-sections", h.AddCustomSection)
	api.Delete("/resume/custom-sections/:id", h.RemoveCustomSection)

	api.Post("/sections/:key/open", h.ToggleOpen)
	api.Post("/sections/:key/visibility", h.ToggleVisible)

	api.Get("/templates", h.ListTemplates)
	api.Get("/preview", h.Preview)
	api.Get("/status", h.Status)

	api.Post("/ai/generate", h.Generate)
	api.Post("/ai/improve", h.Improve)
	api.Post("/ai/image/edit", h.EditImage)

	api.Post("/export/pdf", h.ExportPDF)
	api.Get("/export/doc", h.ExportDoc)
}

var errUnknownSection = errors.New("unknown section")

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":              h.session.Resume(),
		"openSections":      h.session.OpenSections(),
		"sectionVisibility": h.session.Visibility(),
	})
}

// ReplaceResume swaps in a whole new resume after schema validation.
func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	data, err := model.ParseResume(c.Body())
	if err != nil {
		return badRequest(c, err.Error())
	}
	h.session.Replace(data)
	return c.JSON(fiber.Map{"data": h.session.Resume()})
}

type personalPayload struct {
	FullName string        `json:"fullName"`
	JobTitle string        `json:"jobTitle"`
	Contact  model.Contact `json:"contact"`
}

type customPayload struct {
	Title string                    `json:"title"`
	Items []model.CustomSectionItem `json:"items"`
}

// ReplaceSection atomically replaces one section's backing data. The key is
// a standard section key or a custom-section id.
func (h *Handler) ReplaceSection(c *fiber.Ctx) error {
	key := c.Params("key")
	body := c.Body()

	err := h.session.Update(func(r *model.ResumeData) error {
		switch key {
		case model.SectionPersonal:
			var p personalPayload
			if err := json.Unmarshal(body, &p); err != nil {
				return err
			}
			r.FullName, r.JobTitle, r.Contact = p.FullName, p.JobTitle, p.Contact
		case model.SectionSummary:
			var s string
			if err := json.Unmarshal(body, &s); err != nil {
				return err
			}
			r.Summary = s
		case model.SectionExperience:
			return json.Unmarshal(body, &r.Experience)
		case model.SectionEducation:
			return json.Unmarshal(body, &r.Education)
		case model.SectionSkills:
			return json.Unmarshal(body, &r.Skills)
		case model.SectionProjects:
			return json.Unmarshal(body, &r.Projects)
		case model.SectionCertifications:
			return json.Unmarshal(body, &r.Certifications)
		case model.SectionLanguages:
			return json.Unmarshal(body, &r.Languages)
		default:
			cs := r.CustomSectionByID(key)
			if cs == nil {
				return errUnknownSection
			}
			var p customPayload
			if err := json.Unmarshal(body, &p); err != nil {
				return err
			}
			if p.Title != "" {
				cs.Title = p.Title
			}
			cs.Items = p.Items
		}
		return nil
	})
	if err == errUnknownSection {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section " + key})
	}
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"data": h.session.Resume()})
}

type addSectionReq struct {
	Title string `json:"title" validate:"required"`
}

func (h *Handler) AddCustomSection(c *fiber.Ctx) error {
	var req addSectionReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.validate.Struct(&req); err != nil {
		return badRequest(c, "title is required")
	}
	cs := h.session.AddCustomSection(req.Title)
	h.logger.Info("custom section added", zap.String("id", cs.ID), zap.String("title", cs.Title))
	return c.Status(fiber.StatusCreated).JSON(cs)
}

func (h *Handler) RemoveCustomSection(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.session.RemoveCustomSection(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section " + id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ToggleOpen(c *fiber.Ctx) error {
	key := c.Params("key")
	return c.JSON(fiber.Map{"key": key, "open": h.session.ToggleOpen(key)})
}

func (h *Handler) ToggleVisible(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == model.SectionPersonal {
		return badRequest(c, "the personal block is always visible")
	}
	return c.JSON(fiber.Map{"key": key, "visible": h.session.ToggleVisible(key)})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": render.Templates()})
}

func (h *Handler) Status(c *fiber.Ctx) error {
	generating, improving := h.session.Busy()
	if improving == nil {
		improving = []string{}
	}
	return c.JSON(fiber.Map{"generating": generating, "improving": improving})
}

// Preview renders the current resume with the requested template.
func (h *Handler) Preview(c *fiber.Ctx) error {
	html, _, err := h.renderCurrent(c.Query("template", string(render.TemplateModern)))
	if err != nil {
		return badRequest(c, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// renderCurrent renders the session's resume; it returns the page HTML and
// the snapshot it was rendered from.
func (h *Handler) renderCurrent(template string) (string, *model.ResumeData, error) {
	data := h.session.Resume()
	doc, err := render.Render(data, render.TemplateID(template), h.session.Visibility())
	if err != nil {
		return "", nil, err
	}
	html, err := render.HTML(doc)
	if err != nil {
		return "", nil, err
	}
	return html, data, nil
}
