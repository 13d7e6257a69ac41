package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestFilename_ReplacesEverySpace(t *testing.T) {
	doc := types.DefaultDocument()
	doc.PersonalInfo.Name = "Jane Q Public"

	assert.Equal(t, "Jane_Q_Public_Resume.pdf", Filename(doc, FormatPDF))
	assert.Equal(t, "Jane_Q_Public_Resume.docx", Filename(doc, FormatDOCX))
	assert.Equal(t, "Jane_Q_Public_Resume.html", Filename(doc, FormatHTML))
}

func TestFormatValid(t *testing.T) {
	assert.True(t, FormatPDF.Valid())
	assert.True(t, FormatDOCX.Valid())
	assert.True(t, FormatHTML.Valid())
	assert.False(t, Format("rtf").Valid())
}

func TestStandaloneHTML_Structure(t *testing.T) {
	doc := types.DefaultDocument()
	style := types.DefaultStyle()

	page, err := StandaloneHTML(doc, style)
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, doc.PersonalInfo.Name+"'s Resume", parsed.Find("title").Text())
	href, _ := parsed.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, stylesheetName, href)
	assert.Equal(t, 1, parsed.Find("div.resume").Length())
	assert.Contains(t, parsed.Find("style").Text(), "--primary-color: "+style.PrimaryColor)
	assert.Contains(t, parsed.Find("style").Text(), "--secondary-color: "+style.SecondaryColor)
}

func TestStandaloneHTML_FollowsSelectedTemplate(t *testing.T) {
	style := types.DefaultStyle()
	style.Template = types.TemplateModern

	page, err := StandaloneHTML(types.DefaultDocument(), style)
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Find("aside.modern-sidebar").Length())
}

func TestStandaloneHTML_UnknownTemplate(t *testing.T) {
	style := types.DefaultStyle()
	style.Template = "brutalist"

	_, err := StandaloneHTML(types.DefaultDocument(), style)
	require.Error(t, err)
}

func TestExport_HTMLWritesPageAndStylesheet(t *testing.T) {
	e, err := New(t.TempDir(), "")
	require.NoError(t, err)

	path, err := e.Export(context.Background(), types.DefaultDocument(), types.DefaultStyle(), FormatHTML)
	require.NoError(t, err)

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "resume-classic")

	css, err := os.ReadFile(filepath.Join(e.OutDir, stylesheetName))
	require.NoError(t, err)
	assert.Contains(t, string(css), "--primary-color")
}

func TestExport_DOCXWritesFile(t *testing.T) {
	e, err := New(t.TempDir(), "")
	require.NoError(t, err)

	path, err := e.Export(context.Background(), types.DefaultDocument(), types.DefaultStyle(), FormatDOCX)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.True(t, strings.HasSuffix(path, "_Resume.docx"))
}

func TestExport_UnsupportedFormat(t *testing.T) {
	e, err := New(t.TempDir(), "")
	require.NoError(t, err)

	_, exportErr := e.Export(context.Background(), types.DefaultDocument(), types.DefaultStyle(), Format("rtf"))
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, exportErr, &unsupported)
}
