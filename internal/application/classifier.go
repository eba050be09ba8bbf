package application

import (
	"strings"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
)

// ClassifyTerms returns one TermStatus per reference term, in reference order.
// Keys that only exist in the candidate are ignored.
func ClassifyTerms(reference, candidate *entities.Locale) []entities.TermStatus {
	out := make([]entities.TermStatus, 0, reference.Len())
	for _, ref := range reference.Terms {
		text, ok := candidate.Lookup(ref.Key)
		out = append(out, entities.TermStatus{
			Key:            ref.Key,
			ReferenceText:  ref.Text,
			Text:           text,
			Classification: classify(ref.Text, text, ok),
		})
	}
	return out
}

func classify(refText, text string, present bool) domain.Classification {
	if !present {
		return domain.Missing
	}
	if strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(refText)) {
		return domain.Untranslated
	}
	return domain.Translated
}
