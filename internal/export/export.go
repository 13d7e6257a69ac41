// Package export transforms a resume document snapshot into the three output
// encodings: an image-based PDF, a structured DOCX and a standalone HTML
// page. Exports read a snapshot and never mutate the document.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/types"
)

// Format names one of the output encodings.
type Format string

// Supported output formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// Valid reports whether f names a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatHTML:
		return true
	}
	return false
}

// Exporter writes export files into OutDir. ChromePath optionally points at a
// Chrome/Chromium binary for the PDF rasterizer; empty means whatever
// chromedp finds on the system.
type Exporter struct {
	OutDir     string
	ChromePath string
}

// New returns an Exporter writing into outDir, creating it if needed.
func New(outDir, chromePath string) (*Exporter, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}
	return &Exporter{OutDir: outDir, ChromePath: chromePath}, nil
}

// Filename derives the output file name from the resume holder's name: every
// space becomes an underscore, then the `_Resume.<ext>` suffix.
func Filename(doc types.ResumeDocument, format Format) string {
	name := strings.ReplaceAll(doc.PersonalInfo.Name, " ", "_")
	return fmt.Sprintf("%s_Resume.%s", name, format)
}

// Export writes the document in the given format and returns the output path.
func (e *Exporter) Export(ctx context.Context, doc types.ResumeDocument, style types.StyleOptions, format Format) (string, error) {
	outPath := filepath.Join(e.OutDir, Filename(doc, format))

	var err error
	switch format {
	case FormatPDF:
		err = e.writePDF(ctx, doc, style, outPath)
	case FormatDOCX:
		err = e.writeDOCX(doc, outPath)
	case FormatHTML:
		err = e.writeHTML(doc, style, outPath)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
	if err != nil {
		return "", err
	}

	log.Printf("[EXPORT] wrote %s", outPath)
	return outPath, nil
}

// ExportAll produces all three formats concurrently and returns the output
// paths keyed by format. The first failure cancels the remaining encoders.
func (e *Exporter) ExportAll(ctx context.Context, doc types.ResumeDocument, style types.StyleOptions) (map[Format]string, error) {
	formats := []Format{FormatPDF, FormatDOCX, FormatHTML}
	paths := make([]string, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			path, err := e.Export(ctx, doc, style, format)
			if err != nil {
				return fmt.Errorf("%s export: %w", format, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Format]string, len(formats))
	for i, format := range formats {
		out[format] = paths[i]
	}
	return out, nil
}
