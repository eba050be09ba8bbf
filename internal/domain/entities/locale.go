package entities

// Term is a (key, text) pair within a locale.
type Term struct {
	Key  string
	Text string
}

// Locale owns an ordered mapping from term key to localized text.
type Locale struct {
	Code  string
	Name  string
	Terms []Term
	index map[string]int
}

func NewLocale(code, name string) *Locale {
	return &Locale{
		Code:  code,
		Name:  name,
		index: make(map[string]int),
	}
}

// Add appends a term. It returns false, leaving the locale unchanged, when the
// key is already present.
func (l *Locale) Add(key, text string) bool {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if _, ok := l.index[key]; ok {
		return false
	}
	l.index[key] = len(l.Terms)
	l.Terms = append(l.Terms, Term{Key: key, Text: text})
	return true
}

// Lookup returns the text for key and whether it exists.
func (l *Locale) Lookup(key string) (string, bool) {
	if l == nil {
		return "", false
	}
	i, ok := l.index[key]
	if !ok {
		return "", false
	}
	return l.Terms[i].Text, true
}

func (l *Locale) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Terms)
}
