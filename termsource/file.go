package termsource

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSource serves documents from a directory on the local file system.
type FileSource struct {
	root string
}

// NewFileSource creates a FileSource rooted at the given directory.
func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

// Fetch reads the named document.
func (s *FileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		// os.ReadFile already satisfies errors.Is(err, ErrNotFound) for
		// missing files; wrap the rest with the document name.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return nil, err
	}
	return data, nil
}

// FSSource serves documents from an fs.FS, e.g. an embed.FS.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a Source over an fs.FS.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Fetch reads the named document.
func (s *FSSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return nil, err
	}
	return data, nil
}
