package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/output"
)

//go:embed templates
var templateFS embed.FS

var (
	_ output.ReportWriter  = (*Renderer)(nil)
	_ output.MappingWriter = (*Renderer)(nil)
)

// Renderer writes the static report pages into a directory. Output depends
// only on its input: rendering the same report twice gives identical bytes.
type Renderer struct {
	dir   string
	lang  string
	t     output.T
	pages *template.Template
}

// NewRenderer parses the embedded templates. lang selects the language of
// the labels.
func NewRenderer(dir, lang string, t output.T) (*Renderer, error) {
	r := &Renderer{dir: dir, lang: lang, t: t}
	pages, err := template.New("pages").Funcs(template.FuncMap{
		"t": r.translate,
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.pages = pages
	return r, nil
}

func (r *Renderer) translate(key string, pairs ...any) string {
	var data map[string]any
	if len(pairs) > 0 {
		data = make(map[string]any, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			data[fmt.Sprint(pairs[i])] = pairs[i+1]
		}
	}
	return r.t.T(r.lang, key, data)
}

type page struct {
	Lang  string
	Title string
	Root  string
	Date  string
}

type overviewRow struct {
	Code         string
	Name         string
	Completion   string
	Translated   int
	Untranslated int
	Missing      int
	Unavailable  bool
	Reason       string
	Link         string

	completion float64
}

type overviewPage struct {
	page
	Reference string
	TermCount int
	Rows      []overviewRow
}

type localePage struct {
	page
	Code  string
	Name  string
	Total int
	Terms []entities.TermStatus
}

type mappingPage struct {
	page
	Mapped    int
	Unknown   int
	Unmapped  int
	Fields    []entities.FieldMapping
	Uncovered []string
}

// WriteReport writes index.html, style.css and one locales/<code>.html page
// per available locale.
func (r *Renderer) WriteReport(_ context.Context, report *entities.Report) error {
	table := report.Table
	date := r.formatDate(report.GeneratedAt)

	if err := os.MkdirAll(filepath.Join(r.dir, "locales"), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := r.pruneLocalePages(table); err != nil {
		return err
	}
	if err := r.writeStyle(); err != nil {
		return err
	}

	overview := overviewPage{
		page: page{
			Lang:  r.lang,
			Title: r.translate("report.title"),
			Date:  date,
		},
		Reference: table.Reference,
		TermCount: table.TermCount,
		Rows:      r.overviewRows(table),
	}
	if err := r.render("index.html.tmpl", filepath.Join(r.dir, "index.html"), overview); err != nil {
		return err
	}

	for _, l := range table.Locales {
		if l.Unavailable {
			continue
		}
		name := displayName(l)
		detail := localePage{
			page: page{
				Lang:  r.lang,
				Title: r.translate("locale.title", "Name", name),
				Root:  "../",
				Date:  date,
			},
			Code:  l.Code,
			Name:  name,
			Total: len(l.Terms),
			Terms: l.Pending(),
		}
		if err := r.render("locale.html.tmpl", filepath.Join(r.dir, "locales", pageName(l.Code)), detail); err != nil {
			return err
		}
	}
	return nil
}

// pruneLocalePages removes the detail pages of locales that are not available
// in table, so the locales directory only holds pages of the current run.
func (r *Renderer) pruneLocalePages(table *entities.StatusTable) error {
	keep := make(map[string]bool, len(table.Locales))
	for _, l := range table.Locales {
		if !l.Unavailable {
			keep[pageName(l.Code)] = true
		}
	}

	dir := filepath.Join(r.dir, "locales")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".html" || keep[e.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("remove stale page: %w", err)
		}
		log.Printf("Page obsolète supprimée: %s", e.Name())
	}
	return nil
}

// WriteMapping writes mapping.html and style.css.
func (r *Renderer) WriteMapping(_ context.Context, report *entities.MappingReport) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := r.writeStyle(); err != nil {
		return err
	}

	title := report.Title
	if title == "" {
		title = r.translate("mapping.title")
	}
	p := mappingPage{
		page:      page{Lang: r.lang, Title: title, Date: r.formatDate(report.GeneratedAt)},
		Mapped:    report.Count(domain.MappingMapped),
		Unknown:   report.Count(domain.MappingUnknown),
		Unmapped:  report.Count(domain.MappingUnmapped),
		Fields:    report.Fields,
		Uncovered: report.Uncovered,
	}
	return r.render("mapping.html.tmpl", filepath.Join(r.dir, "mapping.html"), p)
}

// formatDate spells the date in the report language. The zero time gives "".
func (r *Renderer) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return r.translate("date.format",
		"Day", t.Day(),
		"Month", r.translate(fmt.Sprintf("date.month.%02d", int(t.Month()))),
		"Year", t.Year())
}

// overviewRows sorts available locales by completion (highest first) then
// code, followed by unavailable locales by code.
func (r *Renderer) overviewRows(table *entities.StatusTable) []overviewRow {
	rows := make([]overviewRow, 0, len(table.Locales))
	for _, l := range table.Locales {
		row := overviewRow{
			Code:        l.Code,
			Name:        displayName(l),
			Unavailable: l.Unavailable,
		}
		if l.Unavailable {
			row.Reason = r.t.T(r.lang, "error."+reasonCode(l.ReasonCode), nil)
		} else {
			row.completion = l.Completion()
			row.Completion = fmt.Sprintf("%.2f", row.completion)
			row.Translated = l.Count(domain.Translated)
			row.Untranslated = l.Count(domain.Untranslated)
			row.Missing = l.Count(domain.Missing)
			row.Link = "locales/" + pageName(l.Code)
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(rows, func(a, b overviewRow) int {
		if a.Unavailable != b.Unavailable {
			if a.Unavailable {
				return 1
			}
			return -1
		}
		if a.completion != b.completion {
			if a.completion > b.completion {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Code, b.Code)
	})
	return rows
}

func (r *Renderer) render(name, path string, data any) error {
	var buf bytes.Buffer
	if err := r.pages.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) writeStyle() error {
	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return fmt.Errorf("read style: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, "style.css"), css, 0o644); err != nil {
		return fmt.Errorf("write style: %w", err)
	}
	return nil
}

func displayName(l entities.LocaleStatus) string {
	if l.Name != "" {
		return l.Name
	}
	return l.Code
}

func reasonCode(code string) string {
	if code == "" {
		return "unknown"
	}
	return code
}

// pageName keeps locale codes from escaping the locales directory.
func pageName(code string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(code) + ".html"
}
