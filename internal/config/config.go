package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"localestatus/internal/domain"
	"localestatus/internal/infrastructure/locale"
)

type Config struct {
	LocaleSource    string        `env:"LOCALE_SOURCE"`
	ReferenceLocale string        `env:"REFERENCE_LOCALE" envDefault:"en-US"`
	Locales         []string      `env:"LOCALES" envSeparator:","`
	LocalesFile     string        `env:"LOCALES_FILE"`
	OutputDir       string        `env:"OUTPUT_DIR" envDefault:"docs"`
	ReportLanguage  string        `env:"REPORT_LANGUAGE" envDefault:"en"`
	ReportShowDate  bool          `env:"REPORT_SHOW_DATE" envDefault:"false"`
	ReportTimezone  string        `env:"REPORT_TIMEZONE" envDefault:"UTC"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DiscordWebhook  string        `env:"DISCORD_WEBHOOK_URL"`
	MappingFile     string        `env:"MAPPING_FILE"`

	// Sources maps a locale code to a location overriding LocaleSource.
	// It is filled from LOCALES_FILE.
	Sources map[string]string `env:"-"`
}

// Manifest is the TOML document referenced by LOCALES_FILE:
//
//	locales = ["de-DE", "fr-FR"]
//	[sources]
//	"fr-FR" = "./locales/locales-fr-FR.xml"
type Manifest struct {
	Locales []string          `toml:"locales"`
	Sources map[string]string `toml:"sources"`
}

// DefaultEnvFile is read when no env file is given. It may be absent.
const DefaultEnvFile = ".env"

// Load charge la configuration depuis envFile et les variables
// d'environnement, puis la valide. Un envFile vide désigne DefaultEnvFile,
// qui est optionnel; un fichier nommé explicitement doit exister.
func Load(envFile string) (*Config, error) {
	optional := envFile == ""
	if optional {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: lecture de %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.LocalesFile != "" {
		if err := cfg.loadManifest(cfg.LocalesFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: LOCALES_FILE illisible (%q): %w", path, err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("config: LOCALES_FILE invalide (%q): %w", path, err)
	}
	c.Locales = append(c.Locales, m.Locales...)
	if len(m.Sources) > 0 && c.Sources == nil {
		c.Sources = make(map[string]string, len(m.Sources))
	}
	for code, src := range m.Sources {
		c.Sources[code] = src
	}
	return nil
}

// Validate applique toutes les règles sur la configuration chargée. Les codes
// de locale sont nettoyés et la liste est triée.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ReferenceLocale) == "" {
		c.ReferenceLocale = domain.DefaultReferenceLocale
	}
	if _, err := language.Parse(c.ReferenceLocale); err != nil {
		return fmt.Errorf("config: REFERENCE_LOCALE invalide (%q): %w", c.ReferenceLocale, err)
	}

	locales := make([]string, 0, len(c.Locales))
	for _, code := range c.Locales {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("config: code de locale invalide (%q): %w", code, err)
		}
		if strings.ContainsAny(code, `/\`) {
			return fmt.Errorf("config: code de locale invalide (%q)", code)
		}
		if slices.Contains(locales, code) {
			return fmt.Errorf("config: locale %q listée deux fois", code)
		}
		locales = append(locales, code)
	}
	slices.Sort(locales)
	c.Locales = locales

	if strings.TrimSpace(c.LocaleSource) == "" {
		c.LocaleSource = locale.DefaultSource
	}
	if !strings.Contains(c.LocaleSource, "{code}") {
		return fmt.Errorf("config: LOCALE_SOURCE doit contenir {code} (%q)", c.LocaleSource)
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("config: OUTPUT_DIR est requis et ne peut pas être vide")
	}

	if _, err := language.Parse(c.ReportLanguage); err != nil {
		return fmt.Errorf("config: REPORT_LANGUAGE invalide (%q): %w", c.ReportLanguage, err)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("config: HTTP_TIMEOUT doit être positif")
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	}

	return nil
}

// RequireLocales is checked by the status mode only: the mapping mode does not
// read any locale.
func (c *Config) RequireLocales() error {
	if len(c.Locales) == 0 {
		return fmt.Errorf("config: LOCALES ou LOCALES_FILE est requis et ne peut pas être vide")
	}
	return nil
}
