package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	domainRepo "go-medical-seeder/internal/domain/repository"
)

type fileReportSink struct {
	path string
}

// NewFileReportSink writes the transcript to path, replacing any previous report
func NewFileReportSink(path string) domainRepo.ReportSink {
	return &fileReportSink{path: path}
}

func (s *fileReportSink) Name() string {
	return "file:" + s.path
}

func (s *fileReportSink) Save(ctx context.Context, content []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
