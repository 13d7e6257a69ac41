package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_StringArray(t *testing.T) {
	require.NoError(t, Validate(StringArray, `["Go", "SQL"]`))
	require.NoError(t, Validate(StringArray, `[]`))

	err := Validate(StringArray, `{"not": "an array"}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, StringArray, ve.Schema)
}

func TestValidate_MatchReport(t *testing.T) {
	require.NoError(t, Validate(MatchReport, `{"score": 85, "analysis": "## Strengths"}`))

	// Missing score is a violation.
	err := Validate(MatchReport, `{"analysis": "text"}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Out-of-range score is a violation.
	err = Validate(MatchReport, `{"score": 150}`)
	require.ErrorAs(t, err, &ve)
}

func TestValidate_ParsedResume(t *testing.T) {
	valid := `{
		"personalInfo": {"name": "Jane", "email": "j@example.com"},
		"summary": "Engineer.",
		"experience": [{"title": "Dev", "company": "Acme", "description": "• Built things"}],
		"education": [{"degree": "B.S.", "university": "State"}],
		"skills": ["Go"]
	}`
	require.NoError(t, Validate(ParsedResume, valid))

	// Experience items must carry title/company/description.
	err := Validate(ParsedResume, `{"experience": [{"title": "Dev"}]}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidate_NotJSON(t *testing.T) {
	err := Validate(StringArray, `definitely not json`)
	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing", `{}`)
	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}
