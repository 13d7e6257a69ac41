// Package editor adapts discrete UI field-change events onto document store
// mutations. The bridge holds no state of its own beyond transient input
// buffers, currently just the in-progress skill tag being typed.
package editor

import (
	"strings"
	"sync"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// Bridge maps UI edits onto the document store.
type Bridge struct {
	store *store.Store

	mu         sync.Mutex
	skillInput string
}

// New creates a bridge over s.
func New(s *store.Store) *Bridge {
	return &Bridge{store: s}
}

// SetField forwards a scalar field edit.
func (b *Bridge) SetField(path, value string) error {
	return b.store.MutateField(path, value)
}

// SetItemField forwards a per-item field edit. A missing id is tolerated as a
// no-op by the store: the item may have been deleted while the edit was in
// flight.
func (b *Bridge) SetItemField(col store.Collection, id int64, field, value string) error {
	return b.store.MutateCollectionItem(col, id, field, value)
}

// AddExperience appends a blank experience entry and returns its id.
func (b *Bridge) AddExperience() int64 {
	return b.store.InsertExperience(types.ExperienceItem{})
}

// AddEducation appends a blank education entry and returns its id.
func (b *Bridge) AddEducation() int64 {
	return b.store.InsertEducation(types.EducationItem{})
}

// AddCertificate appends a blank certificate entry and returns its id.
func (b *Bridge) AddCertificate() int64 {
	return b.store.InsertCertificate(types.CertificateItem{})
}

// RemoveItem deletes the item with the given id.
func (b *Bridge) RemoveItem(col store.Collection, id int64) {
	b.store.RemoveItem(col, id)
}

// RemoveSkill deletes a skill tag.
func (b *Bridge) RemoveSkill(skill string) {
	b.store.RemoveSkill(skill)
}

// SetJobContext replaces the target-job text.
func (b *Bridge) SetJobContext(text string) {
	b.store.SetJobContext(text)
}

// SkillKeystroke feeds one keystroke into the skill-tag input buffer. Enter
// or comma commits the buffer: the input is trimmed, and empty or duplicate
// (case-insensitive) input silently clears the buffer without inserting.
// Returns whether a skill was committed into the document.
func (b *Bridge) SkillKeystroke(r rune) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r != '\n' && r != ',' {
		b.skillInput += string(r)
		return false
	}

	skill := strings.TrimSpace(b.skillInput)
	b.skillInput = ""
	if skill == "" {
		return false
	}
	return b.store.AddSkill(skill)
}

// SetSkillInput replaces the whole buffer, for UIs that report input state
// rather than keystrokes.
func (b *Bridge) SetSkillInput(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.skillInput = text
}

// CommitSkill commits the current buffer as if a delimiter had been typed.
func (b *Bridge) CommitSkill() bool {
	return b.SkillKeystroke('\n')
}

// PendingSkill returns the in-progress skill tag.
func (b *Bridge) PendingSkill() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.skillInput
}
