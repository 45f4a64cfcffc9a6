package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redmine-plugin-setup/src/backup"
)

func TestPath_Format(t *testing.T) {
	now := time.Date(2025, 3, 7, 9, 5, 2, 0, time.Local)
	assert.Equal(t, "/p/init.rb.backup.20250307_090502", backup.Path("/p/init.rb", now))
}

func TestCreate_CopiesContent(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "init.rb")
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)

	p, err := backup.Create(manifest, []byte("original\n"), 0o644, now)
	require.NoError(t, err)
	assert.Equal(t, manifest+".backup.20250102_030405", p)

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(got))
}

func TestCreate_TakenNameMovesToNextSecond(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "init.rb")
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)

	first, err := backup.Create(manifest, []byte("original\n"), 0o644, now)
	require.NoError(t, err)
	second, err := backup.Create(manifest, []byte("other"), 0o644, now.Add(300*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, manifest+".backup.20250102_030406", second)

	got, _ := os.ReadFile(first)
	assert.Equal(t, "original\n", string(got))
	got, _ = os.ReadFile(second)
	assert.Equal(t, "other", string(got))
}

func TestCreate_GivesUpAfterSeveralTakenSeconds(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "init.rb")
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(backup.Path(manifest, now.Add(time.Duration(i)*time.Second)), []byte("taken"), 0o644))
	}

	_, err := backup.Create(manifest, []byte("other"), 0o644, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestTimestamp(t *testing.T) {
	ts, ok := backup.Timestamp("init.rb", "./init.rb.backup.20241231_235959")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local), ts)

	for _, p := range []string{"init.rb.backup.latest", "other.rb.backup.20241231_235959", "init.rb"} {
		_, ok := backup.Timestamp("init.rb", p)
		assert.False(t, ok, p)
	}
}

func TestList_NewestFirstAndIgnoresStrays(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "init.rb")
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("init.rb", "current")
	write("init.rb.backup.20250101_000000", "oldest")
	write("init.rb.backup.20250301_000000", "newest")
	write("init.rb.backup.20250201_000000", "middle")
	write("init.rb.backup.bogus", "stray")
	write("other.rb.backup.20250101_000000", "other manifest")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "init.rb.backup.20250401_000000"), 0o755))

	entries, err := backup.List(manifest)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, filepath.Join(dir, "init.rb.backup.20250301_000000"), entries[0].Path)
	assert.Equal(t, filepath.Join(dir, "init.rb.backup.20250201_000000"), entries[1].Path)
	assert.Equal(t, filepath.Join(dir, "init.rb.backup.20250101_000000"), entries[2].Path)
	assert.Equal(t, int64(len("newest")), entries[0].Size)
	assert.Len(t, entries[0].SHA256, 64)
}

func TestList_Empty(t *testing.T) {
	entries, err := backup.List(filepath.Join(t.TempDir(), "init.rb"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRestore_BacksUpCurrentFirst(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "init.rb")
	require.NoError(t, os.WriteFile(manifest, []byte("current"), 0o644))
	old := manifest + ".backup.20250101_000000"
	require.NoError(t, os.WriteFile(old, []byte("previous"), 0o644))

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	safetyPath, err := backup.Restore(manifest, old, now)
	require.NoError(t, err)
	assert.Equal(t, backup.Path(manifest, now), safetyPath)

	got, _ := os.ReadFile(manifest)
	assert.Equal(t, "previous", string(got))
	saved, _ := os.ReadFile(safetyPath)
	assert.Equal(t, "current", string(saved))
	kept, _ := os.ReadFile(old)
	assert.Equal(t, "previous", string(kept))
}

func TestRestore_MissingBackup(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "init.rb")
	require.NoError(t, os.WriteFile(manifest, []byte("current"), 0o644))

	_, err := backup.Restore(manifest, manifest+".backup.20250101_000000", time.Now())
	require.Error(t, err)
	entries, _ := backup.List(manifest)
	assert.Empty(t, entries)
}
