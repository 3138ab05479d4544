package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chinex4/unipaddy-app/internal/model"
)

// FileStore keeps the draft as one JSON document on local disk. Writes go
// through a temp file and rename so a crash mid-save cannot leave a
// half-written draft.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]model.CourseRow, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.CourseRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	var rows []model.CourseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	if rows == nil {
		rows = []model.CourseRow{}
	}
	return rows, nil
}

func (s *FileStore) Save(ctx context.Context, rows []model.CourseRow) error {
	if rows == nil {
		rows = []model.CourseRow{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create draft dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace draft: %w", err)
	}
	return nil
}
