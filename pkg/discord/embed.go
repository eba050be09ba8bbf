package discord

import (
	"fmt"
	"slices"
	"strings"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor        = 0x5865F2
	embedWarningColor = 0xFEE75C
	embedTitle        = "📊 Rapport de traduction"

	// Discord refuses embeds with more than 25 fields.
	maxFields = 25
)

func formatCompletion(l entities.LocaleStatus) string {
	return fmt.Sprintf("%.1f%% (%d manquants, %d non traduits)",
		l.Completion(), l.Count(domain.Missing), l.Count(domain.Untranslated))
}

// BuildRunEmbed summarizes a report: one field per available locale, lowest
// completion first, and the list of unavailable locales in the description.
func BuildRunEmbed(report *entities.Report) *discordgo.MessageEmbed {
	table := report.Table

	available := make([]entities.LocaleStatus, 0, len(table.Locales))
	var unavailable []string
	for _, l := range table.Locales {
		if l.Unavailable {
			unavailable = append(unavailable, l.Code)
			continue
		}
		available = append(available, l)
	}
	slices.SortStableFunc(available, func(a, b entities.LocaleStatus) int {
		ca, cb := a.Completion(), b.Completion()
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		default:
			return strings.Compare(a.Code, b.Code)
		}
	})

	var b strings.Builder
	b.WriteString(fmt.Sprintf("**Référence :** %s (%d termes)\n", table.Reference, table.TermCount))
	b.WriteString(fmt.Sprintf("**Locales :** %d analysées", len(available)))
	color := embedColor
	if len(unavailable) > 0 {
		b.WriteString(fmt.Sprintf(" • %d indisponibles : %s", len(unavailable), strings.Join(unavailable, ", ")))
		color = embedWarningColor
	}

	fields := make([]*discordgo.MessageEmbedField, 0, min(len(available), maxFields))
	for _, l := range available {
		if len(fields) == maxFields {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   l.Code,
			Value:  formatCompletion(l),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: b.String(),
		Color:       color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "run " + report.RunID},
	}
}
