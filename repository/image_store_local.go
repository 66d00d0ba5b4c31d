package repository

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LocalImageStore writes uploads to a directory on disk. The returned
// relative paths always use forward slashes so they can be served as URL
// paths directly.
type LocalImageStore struct {
	baseDir string
}

func NewLocalImageStore(baseDir string) *LocalImageStore {
	return &LocalImageStore{baseDir: baseDir}
}

func (s *LocalImageStore) Save(subdir, filename string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	target := filepath.Join(dir, filepath.Base(filename))
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path.Join(subdir, filepath.Base(filename)), nil
}

func (s *LocalImageStore) Remove(relPath string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
