package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
)

type fakeMappingSource struct {
	report *entities.MappingReport
	err    error
}

func (f *fakeMappingSource) LoadMapping(context.Context, string) (*entities.MappingReport, error) {
	return f.report, f.err
}

type fakeMappingWriter struct {
	written *entities.MappingReport
}

func (f *fakeMappingWriter) WriteMapping(_ context.Context, r *entities.MappingReport) error {
	f.written = r
	return nil
}

func TestClassifyMapping(t *testing.T) {
	t.Parallel()

	report := &entities.MappingReport{Fields: []entities.FieldMapping{
		{Name: "title", Variable: "title"},
		{Name: "publicationTitle", Variable: " container-title "},
		{Name: "extra", Variable: ""},
		{Name: "doi", Variable: "doi"},
	}}

	ClassifyMapping(report)

	assert.Equal(t, domain.MappingMapped, report.Fields[0].Status)
	assert.Equal(t, domain.MappingMapped, report.Fields[1].Status)
	assert.Equal(t, "container-title", report.Fields[1].Variable)
	assert.Equal(t, domain.MappingUnmapped, report.Fields[2].Status)
	assert.Equal(t, domain.MappingUnknown, report.Fields[3].Status, "CSL variables are case-sensitive")

	assert.NotContains(t, report.Uncovered, "title")
	assert.NotContains(t, report.Uncovered, "container-title")
	assert.Contains(t, report.Uncovered, "DOI")
	assert.Len(t, report.Uncovered, len(domain.CSLVariables)-2)
	assert.IsNonDecreasing(t, report.Uncovered)
}

func TestMappingService_Run(t *testing.T) {
	t.Parallel()

	source := &fakeMappingSource{report: &entities.MappingReport{
		Title:  "Zotero",
		Fields: []entities.FieldMapping{{Name: "title", Variable: "title"}},
	}}
	writer := &fakeMappingWriter{}

	report, err := NewMappingService(source, writer, nil).Run(context.Background(), "mapping.toml")

	require.NoError(t, err)
	assert.Same(t, report, writer.written)
	assert.Equal(t, 1, report.Count(domain.MappingMapped))
	assert.True(t, report.GeneratedAt.IsZero())
}

func TestMappingService_SourceError(t *testing.T) {
	t.Parallel()

	source := &fakeMappingSource{err: &domain.ParseError{Locale: "mapping", Reason: "aucun [[field]]"}}
	writer := &fakeMappingWriter{}

	_, err := NewMappingService(source, writer, nil).Run(context.Background(), "mapping.toml")

	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Nil(t, writer.written)
}
