package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFileManager(t *testing.T, maxEntries int) *FileManager {
	t.Helper()
	return NewFileManager(filepath.Join(t.TempDir(), "history.json"), maxEntries)
}

func TestSaveAndList(t *testing.T) {
	mgr := testFileManager(t, 0)

	entry := &Entry{Message: "feat: add login", Model: "gpt-4o-mini", DiffLines: 12}
	require.NoError(t, mgr.Save(entry))

	// IDs and timestamps are filled in
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	entries, err := mgr.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "feat: add login", entries[0].Message)
	assert.Equal(t, "gpt-4o-mini", entries[0].Model)
	assert.Equal(t, 12, entries[0].DiffLines)
}

func TestList_EmptyWhenFileMissing(t *testing.T) {
	mgr := testFileManager(t, 0)

	entries, err := mgr.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_Limit(t *testing.T) {
	mgr := testFileManager(t, 0)

	for _, msg := range []string{"feat: one", "feat: two", "feat: three"} {
		require.NoError(t, mgr.Save(&Entry{Message: msg}))
	}

	entries, err := mgr.List(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The most recent entries win
	assert.Equal(t, "feat: two", entries[0].Message)
	assert.Equal(t, "feat: three", entries[1].Message)
}

func TestSave_Rotation(t *testing.T) {
	mgr := testFileManager(t, 2)

	for _, msg := range []string{"feat: one", "feat: two", "feat: three"} {
		require.NoError(t, mgr.Save(&Entry{Message: msg}))
	}

	entries, err := mgr.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "feat: two", entries[0].Message)
	assert.Equal(t, "feat: three", entries[1].Message)
}

func TestClear(t *testing.T) {
	mgr := testFileManager(t, 0)

	require.NoError(t, mgr.Save(&Entry{Message: "feat: one"}))
	require.NoError(t, mgr.Clear())

	entries, err := mgr.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing an already-empty history is fine
	require.NoError(t, mgr.Clear())
}

func TestSave_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	mgr := NewFileManager(path, 0)

	require.NoError(t, mgr.Save(&Entry{Message: "feat: one"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestList_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	mgr := NewFileManager(path, 0)
	_, err := mgr.List(0)
	assert.Error(t, err)
}
