package gateway

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMergeParsed_EmptyResponseKeepsEverything(t *testing.T) {
	current := types.DefaultDocument()

	merged := MergeParsed(current, types.ParsedResume{})
	assert.Equal(t, current, merged)
}

func TestMergeParsed_PersonalInfoMergesPerField(t *testing.T) {
	current := types.DefaultDocument()
	parsed := types.ParsedResume{
		PersonalInfo: types.PersonalInfo{Name: "Jane Q Public", Phone: "555-0100"},
	}

	merged := MergeParsed(current, parsed)
	assert.Equal(t, "Jane Q Public", merged.PersonalInfo.Name)
	assert.Equal(t, "555-0100", merged.PersonalInfo.Phone)
	assert.Equal(t, current.PersonalInfo.Email, merged.PersonalInfo.Email)
	assert.Equal(t, current.PersonalInfo.LinkedIn, merged.PersonalInfo.LinkedIn)
}

func TestMergeParsed_EmptySummaryKeepsCurrent(t *testing.T) {
	current := types.DefaultDocument()

	merged := MergeParsed(current, types.ParsedResume{Summary: ""})
	assert.Equal(t, current.Summary, merged.Summary)

	merged = MergeParsed(current, types.ParsedResume{Summary: "New summary."})
	assert.Equal(t, "New summary.", merged.Summary)
}

func TestMergeParsed_CollectionsAreAllOrNothing(t *testing.T) {
	current := types.DefaultDocument()
	parsed := types.ParsedResume{
		Experience: []types.ExperienceItem{
			{ID: 42, Title: "SRE", Company: "Acme"},
		},
	}

	merged := MergeParsed(current, parsed)
	// Experience replaced wholesale, with untrusted ids zeroed.
	assert.Len(t, merged.Experience, 1)
	assert.Zero(t, merged.Experience[0].ID)
	assert.Equal(t, "SRE", merged.Experience[0].Title)
	// Education and certificates were absent: kept in full, never partially
	// merged per item.
	assert.Equal(t, current.Education, merged.Education)
	assert.Equal(t, current.Certificates, merged.Certificates)
	assert.Equal(t, current.Skills, merged.Skills)
}

func TestMergeParsed_SkillsDeduped(t *testing.T) {
	merged := MergeParsed(types.DefaultDocument(), types.ParsedResume{
		Skills: []string{"Go", " go ", "SQL", "", "sql"},
	})
	assert.Equal(t, []string{"Go", "SQL"}, merged.Skills)
}

func TestMergeParsed_DoesNotAliasInput(t *testing.T) {
	current := types.DefaultDocument()
	parsed := types.ParsedResume{
		Experience: []types.ExperienceItem{{ID: 7, Title: "Dev"}},
	}

	merged := MergeParsed(current, parsed)
	merged.Experience[0].Title = "mutated"
	assert.Equal(t, "Dev", parsed.Experience[0].Title)
	assert.Equal(t, int64(7), parsed.Experience[0].ID, "input ids must not be zeroed in place")
}
