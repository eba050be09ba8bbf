package entities

import (
	"time"

	"localestatus/internal/domain"
)

// TermStatus is the classification of one reference term in one locale.
type TermStatus struct {
	Key            string
	ReferenceText  string
	Text           string // empty when Missing
	Classification domain.Classification
}

// LocaleStatus holds every classification for one candidate locale, or the
// reason it could not be loaded.
type LocaleStatus struct {
	Code        string
	Name        string
	Terms       []TermStatus
	Unavailable bool
	Reason      string
	ReasonCode  string
}

// Count returns the number of terms with the given classification.
func (s LocaleStatus) Count(c domain.Classification) int {
	n := 0
	for _, t := range s.Terms {
		if t.Classification == c {
			n++
		}
	}
	return n
}

// Completion is the percentage of reference terms that are Translated.
func (s LocaleStatus) Completion() float64 {
	if len(s.Terms) == 0 {
		return 0
	}
	return float64(s.Count(domain.Translated)) / float64(len(s.Terms)) * 100
}

// Pending lists the Untranslated and Missing terms in reference order.
func (s LocaleStatus) Pending() []TermStatus {
	out := make([]TermStatus, 0, len(s.Terms))
	for _, t := range s.Terms {
		if t.Classification != domain.Translated {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the status of key in this locale.
func (s LocaleStatus) Lookup(key string) (TermStatus, bool) {
	for _, t := range s.Terms {
		if t.Key == key {
			return t, true
		}
	}
	return TermStatus{}, false
}

// StatusTable maps (locale code, term key) to a Classification. Locales are
// sorted by code. A table is never mutated after it has been built.
type StatusTable struct {
	Reference string
	TermCount int
	Locales   []LocaleStatus
}

// Locale returns the status of the locale identified by code.
func (t *StatusTable) Locale(code string) (LocaleStatus, bool) {
	for _, l := range t.Locales {
		if l.Code == code {
			return l, true
		}
	}
	return LocaleStatus{}, false
}

// Classification returns the classification of (code, key).
func (t *StatusTable) Classification(code, key string) (domain.Classification, bool) {
	l, ok := t.Locale(code)
	if !ok || l.Unavailable {
		return "", false
	}
	ts, ok := l.Lookup(key)
	if !ok {
		return "", false
	}
	return ts.Classification, true
}

// Report is the input of the report renderer.
type Report struct {
	RunID       string
	Table       *StatusTable
	GeneratedAt time.Time // zero = no date on the pages
}
