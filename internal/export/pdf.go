package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	resumetypes "github.com/jonathan/resume-studio/internal/types"
)

const rasterTimeout = 60 * time.Second

// writePDF rasterizes the rendered template in headless Chrome and wraps the
// bitmap into an A4 image-based PDF. The output is visually identical to the
// HTML render but not text-selectable.
func (e *Exporter) writePDF(ctx context.Context, doc resumetypes.ResumeDocument, style resumetypes.StyleOptions, outPath string) error {
	png, err := e.rasterize(ctx, doc, style)
	if err != nil {
		return &EncodeError{Format: FormatPDF, Cause: err}
	}

	tmpDir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return &EncodeError{Format: FormatPDF, Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	pngPath := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(pngPath, png, 0o644); err != nil {
		return &EncodeError{Format: FormatPDF, Cause: err}
	}

	imp, err := api.Import("form:A4, pos:full", types.POINTS)
	if err != nil {
		return &EncodeError{Format: FormatPDF, Cause: err}
	}
	if err := api.ImportImagesFile([]string{pngPath}, outPath, imp, nil); err != nil {
		return &EncodeError{Format: FormatPDF, Cause: err}
	}
	return nil
}

// rasterize renders the standalone HTML page in a headless browser and takes
// a full-page screenshot. Requires Chrome/Chromium on the system.
func (e *Exporter) rasterize(ctx context.Context, doc resumetypes.ResumeDocument, style resumetypes.StyleOptions) ([]byte, error) {
	page, err := StandaloneHTML(doc, style)
	if err != nil {
		return nil, err
	}

	// The page references its stylesheet by relative path, so both land in
	// one temp dir and Chrome loads it over file://.
	tmpDir, err := os.MkdirTemp("", "resume-raster-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(tmpDir, stylesheetName), stylesheet, 0o644); err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, rasterTimeout)
	defer cancel()

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1240, 1754),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		// Quality 100 selects lossless PNG output.
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, err
	}
	return png, nil
}
