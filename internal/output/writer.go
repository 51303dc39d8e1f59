package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spacesedan/sentijob/internal/models"
)

// Writer serializes the result record to its output path, creating the
// parent directory on the way. Each run overwrites the previous file.
type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

func (w *Writer) Write(rec models.Result) error {
	if err := os.MkdirAll(filepath.Dir(w.Path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
