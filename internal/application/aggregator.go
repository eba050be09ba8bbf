package application

import (
	"slices"
	"strings"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
)

// Aggregator collects per-locale classifications into a StatusTable.
type Aggregator struct {
	reference string
	termCount int
	locales   map[string]entities.LocaleStatus
}

func NewAggregator(reference *entities.Locale) *Aggregator {
	return &Aggregator{
		reference: reference.Code,
		termCount: reference.Len(),
		locales:   make(map[string]entities.LocaleStatus),
	}
}

// Add records the classifications of one candidate locale.
func (a *Aggregator) Add(locale *entities.Locale, terms []entities.TermStatus) error {
	if _, ok := a.locales[locale.Code]; ok {
		return &domain.ConflictError{Locale: locale.Code}
	}
	a.locales[locale.Code] = entities.LocaleStatus{
		Code:  locale.Code,
		Name:  locale.Name,
		Terms: slices.Clone(terms),
	}
	return nil
}

// MarkUnavailable records a candidate locale that could not be loaded.
func (a *Aggregator) MarkUnavailable(code string, cause error) error {
	if _, ok := a.locales[code]; ok {
		return &domain.ConflictError{Locale: code}
	}
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}
	a.locales[code] = entities.LocaleStatus{
		Code:        code,
		Unavailable: true,
		Reason:      reason,
		ReasonCode:  domain.Code(cause),
	}
	return nil
}

// Table returns a snapshot of everything aggregated so far, sorted by locale
// code. Later calls to Add do not affect a returned table.
func (a *Aggregator) Table() *entities.StatusTable {
	table := &entities.StatusTable{
		Reference: a.reference,
		TermCount: a.termCount,
		Locales:   make([]entities.LocaleStatus, 0, len(a.locales)),
	}
	for _, l := range a.locales {
		l.Terms = slices.Clone(l.Terms)
		table.Locales = append(table.Locales, l)
	}
	slices.SortFunc(table.Locales, func(x, y entities.LocaleStatus) int {
		return strings.Compare(x.Code, y.Code)
	})
	return table
}
