package locale

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/output"
)

// Ensure Loader implements the output.LocaleLoader port.
var _ output.LocaleLoader = (*Loader)(nil)

// Cache keeps the raw documents fetched during one run. It is created per run
// and dropped with the Loader; it is not safe for concurrent use.
type Cache struct {
	docs map[string][]byte
}

func NewCache() *Cache {
	return &Cache{docs: make(map[string][]byte)}
}

func (c *Cache) get(code string) ([]byte, bool) {
	data, ok := c.docs[code]
	return data, ok
}

func (c *Cache) put(code string, data []byte) {
	c.docs[code] = data
}

// Len returns the number of cached documents.
func (c *Cache) Len() int { return len(c.docs) }

// Loader fetches and parses CSL locale documents.
type Loader struct {
	source *Source
	cache  *Cache
	namer  display.Namer
}

// NewLoader creates a Loader. Locale names are rendered in nameLang.
func NewLoader(source *Source, cache *Cache, nameLang language.Tag) *Loader {
	if cache == nil {
		cache = NewCache()
	}
	return &Loader{
		source: source,
		cache:  cache,
		namer:  display.Tags(nameLang),
	}
}

func (l *Loader) Load(ctx context.Context, code string) (*entities.Locale, error) {
	data, ok := l.cache.get(code)
	if !ok {
		var err error
		data, err = l.source.Fetch(ctx, code)
		if err != nil {
			return nil, err
		}
		l.cache.put(code, data)
	}

	loc, err := Parse(code, data)
	if err != nil {
		return nil, err
	}
	loc.Name = DisplayName(l.namer, code)
	return loc, nil
}

// DisplayName returns the human-readable name of a locale code, or the code
// itself when it is not a valid BCP 47 tag.
func DisplayName(namer display.Namer, code string) string {
	tag, err := language.Parse(code)
	if err != nil || namer == nil {
		return code
	}
	if name := namer.Name(tag); name != "" {
		return name
	}
	return code
}
