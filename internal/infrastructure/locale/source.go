package locale

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"localestatus/internal/domain"
)

// DefaultSource points at the locale files of the CSL locales repository.
const DefaultSource = "https://raw.githubusercontent.com/citation-style-language/locales/master/locales-{code}.xml"

// maxDocumentSize bounds the size of a remote document. Larger documents are
// rejected rather than truncated.
const maxDocumentSize = 4 << 20

// Source resolves a locale code to a document location and reads it. A
// location starting with http:// or https:// is fetched over HTTP; anything
// else is read from disk.
type Source struct {
	template  string
	overrides map[string]string
	client    *http.Client
}

// NewSource builds a Source from a location template containing {code}.
// overrides maps a locale code to a location that replaces the template.
func NewSource(template string, overrides map[string]string, timeout time.Duration) *Source {
	if template == "" {
		template = DefaultSource
	}
	return &Source{
		template:  template,
		overrides: overrides,
		client:    &http.Client{Timeout: timeout},
	}
}

// Location returns where the document of code is read from.
func (s *Source) Location(code string) string {
	if loc, ok := s.overrides[code]; ok {
		return loc
	}
	return strings.ReplaceAll(s.template, "{code}", code)
}

// Fetch reads the raw document of code.
func (s *Source) Fetch(ctx context.Context, code string) ([]byte, error) {
	loc := s.Location(code)
	if isRemote(loc) {
		return s.fetchHTTP(ctx, code, loc)
	}
	data, err := os.ReadFile(loc)
	if err != nil {
		return nil, &domain.FetchError{Locale: code, Source: loc, Err: err}
	}
	return data, nil
}

func (s *Source) fetchHTTP(ctx context.Context, code, loc string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, &domain.FetchError{Locale: code, Source: loc, Err: err}
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Locale: code, Source: loc, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{
			Locale: code,
			Source: loc,
			Err:    fmt.Errorf("statut HTTP %d", resp.StatusCode),
		}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, &domain.FetchError{Locale: code, Source: loc, Err: err}
	}
	if len(data) > maxDocumentSize {
		return nil, &domain.FetchError{
			Locale: code,
			Source: loc,
			Err:    fmt.Errorf("document trop volumineux (plus de %d octets)", maxDocumentSize),
		}
	}
	return data, nil
}

func isRemote(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}
