package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/output"
)

var _ output.StatusSink = (*StatusRepository)(nil)

// StatusRepository stores the status table of the latest run. Each Publish
// replaces the previous snapshot; no history is kept.
type StatusRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewStatusRepository(pool *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{pool: pool, now: time.Now}
}

func (r *StatusRepository) Publish(ctx context.Context, report *entities.Report) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM locale_status`); err != nil {
		return fmt.Errorf("clear locale status: %w", err)
	}

	publishedAt := report.GeneratedAt
	if publishedAt.IsZero() {
		publishedAt = r.now()
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO report_run (id, run_id, reference, term_count, published_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET run_id = EXCLUDED.run_id,
		    reference = EXCLUDED.reference,
		    term_count = EXCLUDED.term_count,
		    published_at = EXCLUDED.published_at`,
		report.RunID, report.Table.Reference, report.Table.TermCount, publishedAt)
	if err != nil {
		return fmt.Errorf("upsert report run: %w", err)
	}

	batch := &pgx.Batch{}
	for _, row := range localeRows(report.Table) {
		batch.Queue(`
			INSERT INTO locale_status (locale, name, unavailable, reason, translated, untranslated, missing)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`, row...)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert locale status: %w", err)
		}
	}

	terms := termRows(report.Table)
	if len(terms) > 0 {
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"term_status"},
			[]string{"locale", "term_key", "classification"},
			pgx.CopyFromRows(terms),
		)
		if err != nil {
			return fmt.Errorf("copy term status: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func localeRows(table *entities.StatusTable) [][]any {
	rows := make([][]any, 0, len(table.Locales))
	for _, l := range table.Locales {
		rows = append(rows, []any{
			l.Code,
			l.Name,
			l.Unavailable,
			l.ReasonCode,
			int32(l.Count(domain.Translated)),
			int32(l.Count(domain.Untranslated)),
			int32(l.Count(domain.Missing)),
		})
	}
	return rows
}

func termRows(table *entities.StatusTable) [][]any {
	var rows [][]any
	for _, l := range table.Locales {
		if l.Unavailable {
			continue
		}
		for _, t := range l.Terms {
			rows = append(rows, []any{l.Code, t.Key, string(t.Classification)})
		}
	}
	return rows
}
