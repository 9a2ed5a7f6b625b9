package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "sona/src/errors"
	"sona/src/persona"
)

var testAllowlist = persona.Allowlist{
	"demographics", "professional", "personality", "communication_style",
	"values_beliefs", "behavioral_traits", "capabilities", "background",
	"relationships", "preferences",
}

func testPersona(t *testing.T, id, name string) *persona.Persona {
	t.Helper()
	p, err := persona.New(id, name)
	require.NoError(t, err)
	require.NoError(t, p.AddTraitBlock("professional",
		persona.NewObject().Set("role", "Teacher").Set("experience", "15 years"), testAllowlist))
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	p := testPersona(t, "teacher_01", "Ms. Johnson")
	p.Description = "A veteran teacher"

	path, err := st.Save(p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(st.Dir(), "teacher_01.json"), path)

	loaded, err := st.Load("teacher_01")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestSaveRefreshesModifiedTimestamp(t *testing.T) {
	st := New(t.TempDir())
	p := testPersona(t, "p1", "Test")
	p.Metadata.ModifiedAt = "2020-01-01T00:00:00Z"

	_, err := st.Save(p)
	require.NoError(t, err)
	assert.NotEqual(t, "2020-01-01T00:00:00Z", p.Metadata.ModifiedAt)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	_, err := st.Save(testPersona(t, "p1", "Test"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "leftover temp file %s", entry.Name())
	}
}

func TestSaveRejectsPathEscapingIDs(t *testing.T) {
	st := New(t.TempDir())

	for _, id := range []string{"", "../evil", "a/b", "."} {
		p := &persona.Persona{ID: id, Name: "Evil", Traits: persona.NewTraitMap()}
		_, err := st.Save(p)
		assert.Error(t, err, "id %q", id)
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("ghost")
	require.Error(t, err)
	assert.True(t, serrors.IsNotFound(err))
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))

	_, err := New(dir).Load("bad")
	require.Error(t, err)
	assert.True(t, serrors.IsCorrupt(err))
}

func TestLoadRejectsDocumentWithoutIdentity(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anon.json"),
		[]byte(`{"description":"no id or name"}`), 0644))

	_, err := New(dir).Load("anon")
	require.Error(t, err)
	assert.True(t, serrors.IsCorrupt(err))
}

func TestDelete(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Save(testPersona(t, "p1", "Test"))
	require.NoError(t, err)

	deleted, err := st.Delete("p1")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = st.Load("p1")
	assert.True(t, serrors.IsNotFound(err))

	deleted, err = st.Delete("p1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	_, err := st.Save(testPersona(t, "good", "Good"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("garbage"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a persona"), 0644))

	summaries, err := st.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "good", summaries[0].ID)
	assert.Equal(t, 1, summaries[0].TraitCount)
}

func TestListNewestFirst(t *testing.T) {
	st := New(t.TempDir())

	old := testPersona(t, "old", "Old")
	_, err := st.Save(old)
	require.NoError(t, err)
	old.Metadata.ModifiedAt = "2020-01-01T00:00:00Z"
	writeRaw(t, st, old)

	recent := testPersona(t, "recent", "Recent")
	_, err = st.Save(recent)
	require.NoError(t, err)

	summaries, err := st.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "recent", summaries[0].ID)
	assert.Equal(t, "old", summaries[1].ID)
}

// writeRaw persists without touching the modified timestamp
func writeRaw(t *testing.T, st *Store, p *persona.Persona) {
	t.Helper()
	data, err := p.ToJSON()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(st.path(p.ID), data, 0644))
}

func TestListEmptyOrMissingDir(t *testing.T) {
	summaries, err := New(filepath.Join(t.TempDir(), "never-created")).List()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSearch(t *testing.T) {
	st := New(t.TempDir())

	teacher := testPersona(t, "teacher", "Ms. Johnson")
	teacher.Description = "High school mathematics teacher"
	_, err := st.Save(teacher)
	require.NoError(t, err)

	chef, err := persona.New("chef", "Marco")
	require.NoError(t, err)
	require.NoError(t, chef.AddTraitBlock("professional",
		persona.NewObject().Set("specialty", "Italian cuisine"), testAllowlist))
	_, err = st.Save(chef)
	require.NoError(t, err)

	// Name match, case-insensitive
	results, err := st.Search("johnson")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "teacher", results[0].ID)

	// Description match
	results, err = st.Search("MATHEMATICS")
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Trait value match
	results, err = st.Search("italian")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "chef", results[0].ID)

	results, err = st.Search("nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}
