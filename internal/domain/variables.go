package domain

// CSLVariables is the set of variables defined by CSL 1.0.2 (standard, date
// and name variables).
var CSLVariables = []string{
	// standard
	"abstract", "annote", "archive", "archive_collection", "archive_location",
	"archive-place", "authority", "call-number", "chapter-number", "citation-key",
	"citation-label", "citation-number", "collection-number", "collection-title",
	"container-title", "container-title-short", "dimensions", "division", "DOI",
	"edition", "event", "event-place", "event-title", "first-reference-note-number",
	"genre", "ISBN", "ISSN", "issue", "jurisdiction", "keyword", "language",
	"license", "locator", "medium", "note", "number", "number-of-pages",
	"number-of-volumes", "original-publisher", "original-publisher-place",
	"original-title", "page", "page-first", "part-number", "part-title", "PMCID",
	"PMID", "printing-number", "publisher", "publisher-place", "references",
	"reviewed-genre", "reviewed-title", "scale", "section", "source", "status",
	"supplement-number", "title", "title-short", "URL", "version", "volume",
	"volume-title", "volume-title-short", "year-suffix",
	// date
	"accessed", "available-date", "event-date", "issued", "original-date",
	"submitted",
	// name
	"author", "chair", "collection-editor", "compiler", "composer",
	"container-author", "contributor", "curator", "director", "editor",
	"editor-translator", "editorial-director", "executive-producer", "guest",
	"host", "illustrator", "interviewer", "narrator", "organizer",
	"original-author", "performer", "producer", "recipient", "reviewed-author",
	"script-writer", "series-creator", "translator",
}

// IsCSLVariable reports whether name is a CSL variable. Matching is exact:
// CSL variable names are case-sensitive ("DOI", "URL").
func IsCSLVariable(name string) bool {
	for _, v := range CSLVariables {
		if v == name {
			return true
		}
	}
	return false
}
