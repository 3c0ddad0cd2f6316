package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"qb-sync/core/reconcile"
)

// Marshal renders a report as indented JSON, the on-disk and archived
// document format.
func Marshal(rpt *reconcile.Report) ([]byte, error) {
	data, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes a report document to the given path, creating parent
// directories as needed.
func WriteFile(path string, document []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, document, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
