package application

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/input"
	"localestatus/internal/ports/output"
)

var _ input.MappingUseCase = (*MappingService)(nil)

// MappingService renders the field-to-variable comparison page.
type MappingService struct {
	source output.MappingSource
	writer output.MappingWriter
	clock  func() time.Time
}

func NewMappingService(source output.MappingSource, writer output.MappingWriter, clock func() time.Time) *MappingService {
	return &MappingService{
		source: source,
		writer: writer,
		clock:  clock,
	}
}

func (s *MappingService) Run(ctx context.Context, path string) (*entities.MappingReport, error) {
	report, err := s.source.LoadMapping(ctx, path)
	if err != nil {
		return nil, err
	}

	ClassifyMapping(report)
	if s.clock != nil {
		report.GeneratedAt = s.clock()
	}

	if err := s.writer.WriteMapping(ctx, report); err != nil {
		return nil, fmt.Errorf("write mapping: %w", err)
	}
	log.Printf("✅ Page de correspondance écrite (%d champs, %d variables non couvertes)",
		len(report.Fields), len(report.Uncovered))
	return report, nil
}

// ClassifyMapping sets the status of every field and fills Uncovered with the
// CSL variables no field maps to, sorted.
func ClassifyMapping(report *entities.MappingReport) {
	covered := make(map[string]bool)
	for i := range report.Fields {
		f := &report.Fields[i]
		f.Variable = strings.TrimSpace(f.Variable)
		switch {
		case f.Variable == "":
			f.Status = domain.MappingUnmapped
		case domain.IsCSLVariable(f.Variable):
			f.Status = domain.MappingMapped
			covered[f.Variable] = true
		default:
			f.Status = domain.MappingUnknown
		}
	}

	report.Uncovered = report.Uncovered[:0]
	for _, v := range domain.CSLVariables {
		if !covered[v] {
			report.Uncovered = append(report.Uncovered, v)
		}
	}
	slices.Sort(report.Uncovered)
}
