package editor

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridge() (*Bridge, *store.Store) {
	s := store.New(types.ResumeDocument{}, "")
	return New(s), s
}

func TestSkillKeystroke_CommitOnEnter(t *testing.T) {
	b, s := newBridge()

	for _, r := range "Go" {
		assert.False(t, b.SkillKeystroke(r))
	}
	assert.Equal(t, "Go", b.PendingSkill())

	assert.True(t, b.SkillKeystroke('\n'))
	assert.Equal(t, []string{"Go"}, s.Snapshot().Skills)
	assert.Empty(t, b.PendingSkill())
}

func TestSkillKeystroke_CommitOnComma(t *testing.T) {
	b, s := newBridge()

	b.SetSkillInput("SQL")
	assert.True(t, b.SkillKeystroke(','))
	assert.Equal(t, []string{"SQL"}, s.Snapshot().Skills)
}

func TestSkillKeystroke_TrimsWhitespace(t *testing.T) {
	b, s := newBridge()

	b.SetSkillInput("  Kubernetes  ")
	assert.True(t, b.CommitSkill())
	assert.Equal(t, []string{"Kubernetes"}, s.Snapshot().Skills)
}

func TestSkillKeystroke_EmptyClearsWithoutInsert(t *testing.T) {
	b, s := newBridge()

	b.SetSkillInput("   ")
	assert.False(t, b.CommitSkill())
	assert.Empty(t, s.Snapshot().Skills)
	assert.Empty(t, b.PendingSkill())
}

func TestSkillKeystroke_DuplicateClearsWithoutInsert(t *testing.T) {
	b, s := newBridge()
	require.True(t, s.AddSkill("React"))

	b.SetSkillInput("react")
	assert.False(t, b.CommitSkill())
	assert.Equal(t, []string{"React"}, s.Snapshot().Skills)
	assert.Empty(t, b.PendingSkill())
}

func TestSetItemField_RoutesToStore(t *testing.T) {
	b, s := newBridge()
	id := b.AddExperience()

	require.NoError(t, b.SetItemField(store.CollectionExperience, id, "title", "SRE"))
	assert.Equal(t, "SRE", s.Snapshot().Experience[0].Title)

	// Concurrent-deletion tolerance: editing a removed item is a no-op.
	b.RemoveItem(store.CollectionExperience, id)
	require.NoError(t, b.SetItemField(store.CollectionExperience, id, "title", "X"))
	assert.Empty(t, s.Snapshot().Experience)
}

func TestSetField_AndJobContext(t *testing.T) {
	b, s := newBridge()

	require.NoError(t, b.SetField("personalInfo.email", "jane@example.com"))
	b.SetJobContext("Platform team, Go services")

	assert.Equal(t, "jane@example.com", s.Snapshot().PersonalInfo.Email)
	assert.Equal(t, "Platform team, Go services", s.JobContext())
}
