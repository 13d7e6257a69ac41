package storage

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDocument_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	doc := types.DefaultDocument()
	doc.PersonalInfo.Name = "Jane Q Public"
	require.NoError(t, s.SaveDocument(doc))

	loaded, err := s.LoadDocument()
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestLoadDocument_MissingYieldsDefaults(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.LoadDocument()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultDocument(), loaded)
}

func TestLoadDocument_CorruptYieldsDefaultsAndError(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(KeyResumeData, []byte("{not json")))

	loaded, err := s.LoadDocument()
	var corrupt *CorruptStateError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, KeyResumeData, corrupt.Key)
	assert.Equal(t, types.DefaultDocument(), loaded)
}

func TestJobContext_IndependentOfDocument(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveJobContext("Backend engineer, Go"))
	require.NoError(t, s.SaveDocument(types.DefaultDocument()))

	text, err := s.LoadJobContext()
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer, Go", text)
}

func TestLoadJobContext_MissingYieldsEmpty(t *testing.T) {
	s := openTestStore(t)

	text, err := s.LoadJobContext()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestPut_Overwrites(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("k", []byte("one")))
	require.NoError(t, s.Put("k", []byte("two")))

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), value)
}
