package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// ReportStore persists the summary of a run.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.RunReport) error
}

// YAMLReportStore writes reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
