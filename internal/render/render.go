// Package render turns a resume document into HTML markup for one of the
// visual templates. The markup is the inner resume body only; the export
// layer wraps it into a standalone page or rasterizes it.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"bullets":  bulletLines,
	"joinSep":  strings.Join,
	"contacts": contactLine,
}

var templates = template.Must(
	template.New("resume").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"),
)

// Render produces the resume markup for the template named by style. The
// accent colors and font travel as CSS custom properties on the root element
// so one stylesheet serves all three templates.
func Render(doc types.ResumeDocument, style types.StyleOptions) (string, error) {
	if !style.Template.Valid() {
		return "", &TemplateError{Message: fmt.Sprintf("unknown template %q", style.Template)}
	}

	var sb strings.Builder
	data := struct {
		Doc       types.ResumeDocument
		StyleAttr template.CSS
	}{doc, styleAttr(style)}
	if err := templates.ExecuteTemplate(&sb, string(style.Template)+".tmpl", data); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("executing template %q", style.Template), Cause: err}
	}
	return sb.String(), nil
}

// styleAttr builds the root element's style value. Built in code rather than
// in the template because quoted font names trip the CSS value filter.
func styleAttr(style types.StyleOptions) template.CSS {
	font := style.Font
	if strings.ContainsRune(font, ' ') {
		font = fmt.Sprintf("%q, serif", font)
	}
	return template.CSS(fmt.Sprintf(
		"font-family: %s; --primary-color: %s; --secondary-color: %s",
		font, style.PrimaryColor, style.SecondaryColor,
	))
}

// bulletLines splits a description into display bullets: one per non-blank
// line, with any leading bullet glyph stripped since the markup renders its
// own list markers.
func bulletLines(description string) []string {
	var out []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// contactLine joins the non-empty contact fields with the given separator.
func contactLine(sep string, fields ...string) string {
	present := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			present = append(present, f)
		}
	}
	return strings.Join(present, sep)
}
