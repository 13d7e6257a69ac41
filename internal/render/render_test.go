package render

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AllTemplates(t *testing.T) {
	doc := types.DefaultDocument()

	for _, tmpl := range []types.Template{
		types.TemplateClassic,
		types.TemplateModern,
		types.TemplateMinimalist,
	} {
		t.Run(string(tmpl), func(t *testing.T) {
			style := types.DefaultStyle()
			style.Template = tmpl

			html, err := Render(doc, style)
			require.NoError(t, err)
			assert.Contains(t, html, doc.PersonalInfo.Name)
			assert.Contains(t, html, "--primary-color: #007BFF")
			assert.Contains(t, html, "--secondary-color: #343a40")
			assert.Contains(t, html, "Times New Roman")
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	style := types.DefaultStyle()
	style.Template = "brutalist"

	_, err := Render(types.DefaultDocument(), style)
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
}

func TestRender_EscapesDocumentContent(t *testing.T) {
	doc := types.DefaultDocument()
	doc.PersonalInfo.Name = `<script>alert("x")</script>`

	html, err := Render(doc, types.DefaultStyle())
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_CertificatesSectionOnlyWhenPresent(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Certificates = nil

	html, err := Render(doc, types.DefaultStyle())
	require.NoError(t, err)
	assert.NotContains(t, html, "CERTIFICATES")

	doc.Certificates = []types.CertificateItem{{ID: 1, Name: "CKA", Issuer: "CNCF", Date: "2024"}}
	html, err = Render(doc, types.DefaultStyle())
	require.NoError(t, err)
	assert.Contains(t, html, "CERTIFICATES")
	assert.Contains(t, html, "CKA")
}

func TestBulletLines(t *testing.T) {
	lines := bulletLines("• Ran prod\n\n• Wrote docs\n plain line ")
	assert.Equal(t, []string{"Ran prod", "Wrote docs", "plain line"}, lines)
	assert.Nil(t, bulletLines("   \n"))
}
