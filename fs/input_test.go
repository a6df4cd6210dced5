package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tripkml"
	"github.com/fwojciec/tripkml/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("reads UTF-8 file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "trip.html")
		require.NoError(t, os.WriteFile(path, []byte("<title>Rome – Wanderlog</title>"), 0644))

		got, err := fs.ReadInput(path)

		require.NoError(t, err)
		assert.Equal(t, "<title>Rome – Wanderlog</title>", got)
	})

	t.Run("strips UTF-8 byte order mark", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "trip.html")
		require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf<html>"), 0644))

		got, err := fs.ReadInput(path)

		require.NoError(t, err)
		assert.Equal(t, "<html>", got)
	})

	t.Run("decodes UTF-16 with byte order mark", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "trip.html")
		// "<a>" in UTF-16LE with BOM.
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, '<', 0, 'a', 0, '>', 0}, 0644))

		got, err := fs.ReadInput(path)

		require.NoError(t, err)
		assert.Equal(t, "<a>", got)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "trip.html")
		require.NoError(t, os.WriteFile(path, []byte("<title>Caf\xe9</title>"), 0644))

		_, err := fs.ReadInput(path)

		require.Error(t, err)
		assert.Equal(t, tripkml.EUNREADABLE, tripkml.ErrorCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadInput(filepath.Join(t.TempDir(), "nope.html"))

		require.Error(t, err)
		assert.Equal(t, tripkml.EUNREADABLE, tripkml.ErrorCode(err))
	})
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b")

		err := fs.EnsureDir(dir)

		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("accepts existing directory", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, fs.EnsureDir(t.TempDir()))
	})

	t.Run("fails when a file is in the way", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		err := fs.EnsureDir(filepath.Join(file, "sub"))

		require.Error(t, err)
		assert.Equal(t, tripkml.EOUTPUTDIR, tripkml.ErrorCode(err))
	})
}
