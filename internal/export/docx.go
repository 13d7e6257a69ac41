package export

import (
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/jonathan/resume-studio/internal/types"
)

// Run sizes are half-points.
const (
	docxNameSize    = "48"
	docxHeadingSize = "28"
	docxDateColor   = "555555"
)

// writeDOCX reconstructs the document as a structured word-processing file
// straight from the snapshot. This path does not go through the template
// renderer: section order is fixed regardless of the selected template, and
// of the styling choices only the date text color survives.
func (e *Exporter) writeDOCX(doc types.ResumeDocument, outPath string) error {
	w := docx.New().WithDefaultTheme()

	name := w.AddParagraph().Justification("center")
	name.AddText(doc.PersonalInfo.Name).Size(docxNameSize).Bold()

	contact := w.AddParagraph().Justification("center")
	contact.AddText(strings.Join([]string{
		doc.PersonalInfo.Email,
		doc.PersonalInfo.Phone,
		doc.PersonalInfo.LinkedIn,
	}, " | "))

	addHeading(w, "Professional Summary")
	w.AddParagraph().AddText(doc.Summary)

	addHeading(w, "Work Experience")
	for _, exp := range doc.Experience {
		title := w.AddParagraph()
		title.AddText(exp.Title).Bold()
		title.AddText(" | " + exp.Company).Italic()

		dates := w.AddParagraph().Justification("right")
		dates.AddText(exp.StartDate + " - " + exp.EndDate).Color(docxDateColor)

		for _, line := range strings.Split(exp.Description, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "•") {
				line = "• " + line
			}
			w.AddParagraph().AddText(line)
		}
		w.AddParagraph()
	}

	addHeading(w, "Education")
	for _, edu := range doc.Education {
		p := w.AddParagraph()
		p.AddText(edu.Degree).Bold()
		p.AddText(" at " + edu.University + " (" + edu.GradDate + ")")
	}

	if len(doc.Certificates) > 0 {
		addHeading(w, "Certificates")
		for _, cert := range doc.Certificates {
			p := w.AddParagraph()
			p.AddText(cert.Name).Bold()
			p.AddText(" - " + cert.Issuer + " (" + cert.Date + ")")
		}
	}

	addHeading(w, "Skills")
	w.AddParagraph().AddText(strings.Join(doc.Skills, ", "))

	f, err := os.Create(outPath)
	if err != nil {
		return &EncodeError{Format: FormatDOCX, Cause: err}
	}
	defer f.Close()

	if _, err := w.WriteTo(f); err != nil {
		return &EncodeError{Format: FormatDOCX, Cause: err}
	}
	return nil
}

func addHeading(w *docx.Docx, text string) {
	p := w.AddParagraph()
	p.AddText(text).Size(docxHeadingSize).Bold()
}
