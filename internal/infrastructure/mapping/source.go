package mapping

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/output"
)

// Ensure FileSource implements the output.MappingSource port.
var _ output.MappingSource = (*FileSource)(nil)

type document struct {
	Title  string  `toml:"title"`
	Fields []field `toml:"field"`
}

type field struct {
	Name     string `toml:"name"`
	Variable string `toml:"variable"`
}

// FileSource reads mapping documents written in TOML:
//
//	title = "Zotero → CSL"
//	[[field]]
//	name = "publicationTitle"
//	variable = "container-title"
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (s *FileSource) LoadMapping(_ context.Context, path string) (*entities.MappingReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FetchError{Locale: "mapping", Source: path, Err: err}
	}
	return Parse(data)
}

// Parse decodes a mapping document. Every field needs a unique, non-empty
// name; an empty variable marks the field as unmapped.
func Parse(data []byte) (*entities.MappingReport, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, &domain.ParseError{Locale: "mapping", Reason: fmt.Sprintf("TOML invalide (ligne %d, colonne %d)", row, col), Err: err}
		}
		return nil, &domain.ParseError{Locale: "mapping", Reason: "TOML invalide", Err: err}
	}
	if len(doc.Fields) == 0 {
		return nil, &domain.ParseError{Locale: "mapping", Reason: "aucun [[field]]"}
	}

	report := &entities.MappingReport{
		Title:  strings.TrimSpace(doc.Title),
		Fields: make([]entities.FieldMapping, 0, len(doc.Fields)),
	}
	seen := make(map[string]bool, len(doc.Fields))
	for i, f := range doc.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, &domain.ParseError{Locale: "mapping", Reason: fmt.Sprintf("champ #%d sans name", i+1)}
		}
		if seen[name] {
			return nil, &domain.ParseError{Locale: "mapping", Reason: fmt.Sprintf("champ %q en double", name)}
		}
		seen[name] = true
		report.Fields = append(report.Fields, entities.FieldMapping{Name: name, Variable: f.Variable})
	}
	return report, nil
}
