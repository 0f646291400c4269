package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "passage.txt", "The third thing")

	text, stats, err := NewLoader("", 0).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "The third thing", text)
	assert.Equal(t, Stats{Kind: KindFile, Files: 1, Bytes: 15}, stats)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.txt", "")

	text, stats, err := NewLoader("", 0).Load(path)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Equal(t, KindFile, stats.Kind)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "second")
	writeFile(t, dir, "a.txt", "first")
	writeFile(t, dir, "notes.md", "ignored")

	text, stats, err := NewLoader("*.txt", 0).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", text)
	assert.Equal(t, Stats{Kind: KindDir, Files: 2, Bytes: 11}, stats)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := NewLoader("", 0).Load(filepath.Join(dir, "absent.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("directory without matches", func(t *testing.T) {
		empty := filepath.Join(dir, "empty")
		require.NoError(t, os.Mkdir(empty, 0755))
		_, _, err := NewLoader("*.txt", 0).Load(empty)
		assert.ErrorContains(t, err, "no *.txt files")
	})

	t.Run("binary file", func(t *testing.T) {
		path := writeFile(t, dir, "blob.bin", "abc\x00def")
		_, _, err := NewLoader("", 0).Load(path)
		assert.ErrorContains(t, err, "binary")
	})

	t.Run("too large", func(t *testing.T) {
		path := writeFile(t, dir, "big.txt", "0123456789")
		_, _, err := NewLoader("", 4).Load(path)
		assert.ErrorContains(t, err, "exceeds 4 bytes")
	})
}

func TestSourceKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "dir", KindDir.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
