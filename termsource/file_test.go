package termsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.json"), []byte("content"), 0o644))

	src := NewFileSource(dir)

	data, err := src.Fetch(context.Background(), "doc.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = src.Fetch(context.Background(), "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewFileSource(t.TempDir())
	_, err := src.Fetch(ctx, "doc.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"doc.json": &fstest.MapFile{Data: []byte("content")},
	}

	src := NewFSSource(fsys)

	data, err := src.Fetch(context.Background(), "doc.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = src.Fetch(context.Background(), "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
