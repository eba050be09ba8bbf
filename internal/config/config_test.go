package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file use t.Setenv and therefore cannot run in parallel.

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// unsetenv removes keys for the duration of the test, including values that
// godotenv sets while the test runs.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOCALES", "fr-FR, de-DE")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.ReferenceLocale)
	assert.Equal(t, []string{"de-DE", "fr-FR"}, cfg.Locales)
	assert.Equal(t, "docs", cfg.OutputDir)
	assert.Equal(t, "en", cfg.ReportLanguage)
	assert.False(t, cfg.ReportShowDate)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Contains(t, cfg.LocaleSource, "{code}")
	assert.Empty(t, cfg.DatabaseURL)
	assert.NoError(t, cfg.RequireLocales())
}

func TestLoad_EnvFile(t *testing.T) {
	path := writeFile(t, "test.env", "LOCALES=it-IT\nOUTPUT_DIR=public\nREPORT_LANGUAGE=fr\nREPORT_SHOW_DATE=true\n")
	unsetenv(t, "LOCALES", "OUTPUT_DIR", "REPORT_LANGUAGE", "REPORT_SHOW_DATE")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"it-IT"}, cfg.Locales)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "fr", cfg.ReportLanguage)
	assert.True(t, cfg.ReportShowDate)
}

func TestLoad_Manifest(t *testing.T) {
	manifest := writeFile(t, "locales.toml", `
locales = ["pt-BR", "ja-JP"]

[sources]
"ja-JP" = "./local/locales-ja-JP.xml"
`)
	t.Setenv("LOCALES", "nl-NL")
	t.Setenv("LOCALES_FILE", manifest)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"ja-JP", "nl-NL", "pt-BR"}, cfg.Locales)
	assert.Equal(t, map[string]string{"ja-JP": "./local/locales-ja-JP.xml"}, cfg.Sources)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad locale":       {"LOCALES": "fr-FR,not a locale"},
		"duplicate locale": {"LOCALES": "fr-FR,fr-FR"},
		"bad reference":    {"REFERENCE_LOCALE": "?!"},
		"source no code":   {"LOCALE_SOURCE": "https://example.com/en.xml"},
		"bad timeout":      {"HTTP_TIMEOUT": "soon"},
		"negative timeout": {"HTTP_TIMEOUT": "-1s"},
		"bad database url": {"DATABASE_URL": "localhost"},
		"bad report lang":  {"REPORT_LANGUAGE": "??"},
		"missing manifest": {"LOCALES_FILE": "/nonexistent/locales.toml"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}

func TestRequireLocales(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireLocales())
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	t.Setenv("LOCALES", "fr-FR")

	_, err := Load(filepath.Join(t.TempDir(), "custom.env"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "custom.env")
}

func TestLoad_DefaultEnvFileIsOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOCALES", "fr-FR")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, []string{"fr-FR"}, cfg.Locales)
}
