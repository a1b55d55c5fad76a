package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed page.gohtml
var pageTemplate string

//go:embed fragment.gohtml
var fragmentTemplate string

//go:embed style.css
var styleCSS string

var pageTpl = template.Must(template.Must(template.New("page").Funcs(template.FuncMap{
	"colSpanClass": func(span int) string { return fmt.Sprintf("col-span-%d", span) },
}).Parse(pageTemplate)).Parse(fragmentTemplate))

// HTML serializes a document into a self-contained A4 page. The stylesheet
// is inlined so the output survives being saved, printed or handed to the
// PDF renderer as a single file.
func HTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	data := struct {
		*Document
		Style template.CSS
	}{Document: doc, Style: template.CSS(styleCSS)}
	if err := pageTpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// BodyHTML serializes only the resume markup, without the page shell or
// stylesheet. The word-processor export wraps this in its own document.
func BodyHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := pageTpl.ExecuteTemplate(&buf, "resume", doc); err != nil {
		return "", fmt.Errorf("render body html: %w", err)
	}
	return buf.String(), nil
}
