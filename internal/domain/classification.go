package domain

// Classification is the translation status of one term in one locale relative
// to the reference locale.
type Classification string

const (
	Translated   Classification = "translated"
	Untranslated Classification = "untranslated"
	Missing      Classification = "missing"
)

// Mapping statuses used by the schema-mapping report.
const (
	MappingMapped   = "mapped"
	MappingUnknown  = "unknown"
	MappingUnmapped = "unmapped"
)

// DefaultReferenceLocale is the locale every other locale is compared against.
const DefaultReferenceLocale = "en-US"
