package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/input"
	"localestatus/internal/ports/output"
)

var _ input.ReportUseCase = (*ReportService)(nil)

// ReportOptions configures a ReportService. Sink, Notifier and Clock are
// optional.
type ReportOptions struct {
	Reference string
	Locales   []string
	Sink      output.StatusSink
	Notifier  output.Notifier
	// Clock stamps the report date. nil keeps pages free of any date.
	Clock func() time.Time
}

type ReportService struct {
	loader output.LocaleLoader
	writer output.ReportWriter
	opts   ReportOptions
}

func NewReportService(loader output.LocaleLoader, writer output.ReportWriter, opts ReportOptions) *ReportService {
	if opts.Reference == "" {
		opts.Reference = domain.DefaultReferenceLocale
	}
	return &ReportService{
		loader: loader,
		writer: writer,
		opts:   opts,
	}
}

// Run resolves the reference locale, classifies every configured locale
// against it and writes the report. A reference failure aborts the run before
// any other locale is loaded; candidate failures are recorded as unavailable.
// The returned report is non-nil whenever the pages were written, even if
// publishing to the sink or notifier failed.
func (s *ReportService) Run(ctx context.Context) (*entities.Report, error) {
	runID := uuid.NewString()

	reference, err := s.resolveReference(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Référence %s chargée (%d termes, run=%s)", reference.Code, reference.Len(), runID)

	agg := NewAggregator(reference)
	for _, code := range s.opts.Locales {
		if code == reference.Code {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := s.loader.Load(ctx, code)
		if err != nil {
			log.Printf("⚠️ Locale %s indisponible: %v", code, err)
			if err := agg.MarkUnavailable(code, err); err != nil {
				return nil, err
			}
			continue
		}
		if err := agg.Add(candidate, ClassifyTerms(reference, candidate)); err != nil {
			return nil, err
		}
	}

	report := &entities.Report{
		RunID: runID,
		Table: agg.Table(),
	}
	if s.opts.Clock != nil {
		report.GeneratedAt = s.opts.Clock()
	}

	if err := s.writer.WriteReport(ctx, report); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	log.Printf("✅ Rapport écrit (%d locales)", len(report.Table.Locales))

	return report, s.publish(ctx, report)
}

func (s *ReportService) resolveReference(ctx context.Context) (*entities.Locale, error) {
	reference, err := s.loader.Load(ctx, s.opts.Reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReferenceUnavailable, err)
	}
	if reference.Len() == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrReferenceUnavailable,
			&domain.ParseError{Locale: reference.Code, Reason: "aucun terme"})
	}
	return reference, nil
}

func (s *ReportService) publish(ctx context.Context, report *entities.Report) error {
	var errs []error
	if s.opts.Sink != nil {
		if err := s.opts.Sink.Publish(ctx, report); err != nil {
			errs = append(errs, fmt.Errorf("publish status: %w", err))
		}
	}
	if s.opts.Notifier != nil {
		if err := s.opts.Notifier.NotifyRun(ctx, report); err != nil {
			errs = append(errs, fmt.Errorf("notify run: %w", err))
		}
	}
	return errors.Join(errs...)
}
