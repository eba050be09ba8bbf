package output

import (
	"context"

	"localestatus/internal/domain/entities"
)

type ReportWriter interface {
	WriteReport(ctx context.Context, report *entities.Report) error
}

type MappingWriter interface {
	WriteMapping(ctx context.Context, report *entities.MappingReport) error
}

// StatusSink publishes the latest status table outside of the report pages.
type StatusSink interface {
	Publish(ctx context.Context, report *entities.Report) error
}

// Notifier tells operators that a run finished.
type Notifier interface {
	NotifyRun(ctx context.Context, report *entities.Report) error
}

// MappingSource reads a field-to-variable mapping document.
type MappingSource interface {
	LoadMapping(ctx context.Context, path string) (*entities.MappingReport, error)
}
