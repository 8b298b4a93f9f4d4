package repository

import "context"

// ReportSink persists a verification transcript
type ReportSink interface {
	Name() string
	Save(ctx context.Context, content []byte) error
}
