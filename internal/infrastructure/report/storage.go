package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage persists rendered report files.
type Storage interface {
	// Save writes content under a generated unique name and returns it.
	Save(content []byte) (fileName string, err error)
	// Open returns the content of a previously saved report.
	Open(fileName string) ([]byte, error)
}

// FileStorage stores reports on the local filesystem.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the output directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Save(content []byte) (string, error) {
	fileName := fmt.Sprintf("county_report_%s.html", uuid.NewString())
	if err := os.WriteFile(filepath.Join(s.dir, fileName), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return fileName, nil
}

func (s *FileStorage) Open(fileName string) ([]byte, error) {
	// reject path traversal in stored names
	if filepath.Base(fileName) != fileName {
		return nil, fmt.Errorf("invalid report file name: %s", fileName)
	}
	content, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}
	return content, nil
}
