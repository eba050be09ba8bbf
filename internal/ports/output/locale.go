package output

import (
	"context"

	"localestatus/internal/domain/entities"
)

// LocaleLoader retrieves one locale's term definitions and parses them into a
// normalized mapping. Implementations return a *domain.FetchError when the
// source is unreachable and a *domain.ParseError when the document is invalid.
type LocaleLoader interface {
	Load(ctx context.Context, code string) (*entities.Locale, error)
}
