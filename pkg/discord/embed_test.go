package discord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
)

func locale(code string, translated, missing int) entities.LocaleStatus {
	l := entities.LocaleStatus{Code: code}
	for i := 0; i < translated; i++ {
		l.Terms = append(l.Terms, entities.TermStatus{Key: fmt.Sprint("t", i), Classification: domain.Translated})
	}
	for i := 0; i < missing; i++ {
		l.Terms = append(l.Terms, entities.TermStatus{Key: fmt.Sprint("m", i), Classification: domain.Missing})
	}
	return l
}

func TestBuildRunEmbed(t *testing.T) {
	t.Parallel()

	report := &entities.Report{
		RunID: "abc",
		Table: &entities.StatusTable{
			Reference: "en-US",
			TermCount: 4,
			Locales: []entities.LocaleStatus{
				locale("de-DE", 4, 0),
				{Code: "es-ES", Unavailable: true},
				locale("fr-FR", 1, 3),
			},
		},
	}

	embed := BuildRunEmbed(report)

	assert.Equal(t, embedWarningColor, embed.Color)
	assert.Contains(t, embed.Description, "en-US (4 termes)")
	assert.Contains(t, embed.Description, "1 indisponibles : es-ES")
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "fr-FR", embed.Fields[0].Name, "lowest completion first")
	assert.Equal(t, "25.0% (3 manquants, 0 non traduits)", embed.Fields[0].Value)
	assert.Equal(t, "de-DE", embed.Fields[1].Name)
	assert.Equal(t, "run abc", embed.Footer.Text)
}

func TestBuildRunEmbed_FieldLimit(t *testing.T) {
	t.Parallel()

	table := &entities.StatusTable{Reference: "en-US", TermCount: 1}
	for i := 0; i < 40; i++ {
		table.Locales = append(table.Locales, locale(fmt.Sprintf("x%02d", i), 1, 0))
	}

	embed := BuildRunEmbed(&entities.Report{Table: table})

	assert.Len(t, embed.Fields, maxFields)
	assert.Equal(t, embedColor, embed.Color)
	assert.Equal(t, "x00", embed.Fields[0].Name)
}
