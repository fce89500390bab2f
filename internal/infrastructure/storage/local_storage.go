// Package storage provides file storage for uploaded images.
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

const (
	nameLength   = 16
	nameCharset  = "abcdefghijklmnopqrstuvwxyz0123456789"
	maxNameTries = 10
)

// LocalStorage stores uploaded files on the local filesystem under a base
// directory. Stored names are short random strings with the original
// extension preserved; a name collision re-rolls.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if it does not exist
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes the content to a new randomly named file and returns the stored
// file name
func (s *LocalStorage) Save(originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	for try := 0; try < maxNameTries; try++ {
		name, err := randomName(nameLength)
		if err != nil {
			return "", err
		}
		name += ext

		path := filepath.Join(s.basePath, name)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to create file: %w", err)
		}

		if _, err := io.Copy(file, content); err != nil {
			file.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write file: %w", err)
		}
		if err := file.Close(); err != nil {
			return "", err
		}

		return name, nil
	}

	return "", fmt.Errorf("failed to allocate a unique file name after %d attempts", maxNameTries)
}

// Remove deletes a stored file. Removing a file that no longer exists is not
// an error.
func (s *LocalStorage) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.basePath, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FullPath returns the absolute path of a stored file
func (s *LocalStorage) FullPath(name string) string {
	return filepath.Join(s.basePath, filepath.Base(name))
}

func randomName(length int) (string, error) {
	max := big.NewInt(int64(len(nameCharset)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = nameCharset[n.Int64()]
	}
	return string(b), nil
}
