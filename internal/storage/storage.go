package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("stored file not found")
	ErrInvalidName = errors.New("file name contains an invalid path sequence")
)

// Store keeps uploaded photo files on local disk under a single directory.
// Stored names are a random UUID plus the original extension, so uploads can
// never collide and never escape the directory.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("could not resolve upload dir: %w", err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("could not create upload dir: %w", err)
	}

	return &Store{dir: abs}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes src to disk and returns the generated stored name.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	if strings.Contains(originalName, "..") {
		return "", ErrInvalidName
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("could not create file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("could not write file %s: %w", name, err)
	}

	return name, nil
}

// Resolve returns the absolute path of a stored file.
func (s *Store) Resolve(name string) (string, error) {
	path, err := s.safePath(name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Delete removes a stored file. A missing file is not an error, only a log
// line, so cascade deletes stay best-effort.
func (s *Store) Delete(name string) error {
	path, err := s.safePath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Printf("File %s was already gone, nothing to delete", name)
			return nil
		}
		return fmt.Errorf("could not delete file %s: %w", name, err)
	}
	return nil
}

func (s *Store) safePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}
