package export

import (
	_ "embed"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/types"
)

// stylesheet carries the utility classes shared by all three templates; it is
// written next to the HTML output and referenced, not inlined, so the page
// stays readable.
//
//go:embed resume.css
var stylesheet []byte

const stylesheetName = "resume.css"

// StandaloneHTML wraps the rendered template markup into a complete page:
// the font name and the two accent colors are inlined as style variables on
// the body, everything else comes from the external stylesheet.
func StandaloneHTML(doc types.ResumeDocument, style types.StyleOptions) (string, error) {
	body, err := render.Render(doc, style)
	if err != nil {
		return "", err
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s's Resume</title>
<link rel="stylesheet" href="%s">
<style>
  body {
    font-family: %s, sans-serif;
    --primary-color: %s;
    --secondary-color: %s;
  }
</style>
</head>
<body>
%s
</body>
</html>
`, html.EscapeString(doc.PersonalInfo.Name), stylesheetName,
		style.Font, style.PrimaryColor, style.SecondaryColor, body)

	// Round-trip through a DOM parse: malformed markup surfaces here instead
	// of in the consumer's browser, and the serialization is normalized.
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", &EncodeError{Format: FormatHTML, Cause: err}
	}
	out, err := parsed.Html()
	if err != nil {
		return "", &EncodeError{Format: FormatHTML, Cause: err}
	}
	return out, nil
}

func (e *Exporter) writeHTML(doc types.ResumeDocument, style types.StyleOptions, outPath string) error {
	page, err := StandaloneHTML(doc, style)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(e.OutDir, stylesheetName), stylesheet, 0o644); err != nil {
		return &EncodeError{Format: FormatHTML, Cause: err}
	}
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return &EncodeError{Format: FormatHTML, Cause: err}
	}
	return nil
}
