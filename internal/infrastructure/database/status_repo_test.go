package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
)

func TestRows(t *testing.T) {
	t.Parallel()

	table := &entities.StatusTable{
		Reference: "en-US",
		TermCount: 2,
		Locales: []entities.LocaleStatus{
			{Code: "de-DE", Unavailable: true, ReasonCode: "fetch_failed"},
			{
				Code: "fr-FR",
				Name: "French (France)",
				Terms: []entities.TermStatus{
					{Key: "edition", Classification: domain.Translated},
					{Key: "volume", Classification: domain.Missing},
				},
			},
		},
	}

	assert.Equal(t, [][]any{
		{"de-DE", "", true, "fetch_failed", int32(0), int32(0), int32(0)},
		{"fr-FR", "French (France)", false, "", int32(1), int32(0), int32(1)},
	}, localeRows(table))

	assert.Equal(t, [][]any{
		{"fr-FR", "edition", "translated"},
		{"fr-FR", "volume", "missing"},
	}, termRows(table))
}
