package i18n

import (
	"embed"
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"localestatus/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

var messageFiles = []string{"active.en.toml", "active.fr.toml"}

// Translator resolves report labels from the embedded message files.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	fallback        *i18n.Localizer
}

// NewTranslator builds a Translator with the given default report language
// (e.g. "en"). Messages come from the embedded active.*.toml files.
func NewTranslator(defaultLocale string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid report language %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		fallback:        i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Language returns the default report language.
func (t *Translator) Language() language.Tag {
	return t.defaultLanguage
}

// T renders the label key in lang, then in the default report language, then
// in English. An unknown key is returned as is.
func (t *Translator) T(lang, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: libellé %q introuvable (langue=%q): %v", key, lang, err)
		return key
	}
	return msg
}

func (t *Translator) localizer(lang string) *i18n.Localizer {
	if lang == "" || lang == t.defaultLanguage.String() {
		return t.fallback
	}
	return i18n.NewLocalizer(t.bundle, lang, t.defaultLanguage.String())
}
