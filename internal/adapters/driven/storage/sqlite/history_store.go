package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record appends a search record.
func (h *historyStore) Record(ctx context.Context, rec domain.SearchRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: record without id", domain.ErrInvalidInput)
	}
	if rec.At.IsZero() {
		rec.At = time.Now()
	}

	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO searches (id, term, status, hits, error, duration_ns, at_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			hits = excluded.hits,
			error = excluded.error,
			duration_ns = excluded.duration_ns,
			at_ns = excluded.at_ns
	`, rec.ID, rec.Term, rec.Status.String(), rec.Hits, rec.Error,
		int64(rec.Duration), rec.At.UnixNano())
	if err != nil {
		return fmt.Errorf("saving search: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (h *historyStore) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	query := `
		SELECT id, term, status, hits, error, duration_ns, at_ns
		FROM searches
		ORDER BY at_ns DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing searches: %w", err)
	}
	defer rows.Close()

	records := []domain.SearchRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes all records.
func (h *historyStore) Clear(ctx context.Context) error {
	if _, err := h.store.db.ExecContext(ctx, "DELETE FROM searches"); err != nil {
		return fmt.Errorf("clearing searches: %w", err)
	}
	return nil
}

func scanRecord(rows *sql.Rows) (domain.SearchRecord, error) {
	var (
		rec        domain.SearchRecord
		status     string
		durationNS int64
		atNS       int64
	)
	if err := rows.Scan(&rec.ID, &rec.Term, &status, &rec.Hits, &rec.Error, &durationNS, &atNS); err != nil {
		return domain.SearchRecord{}, fmt.Errorf("scanning search: %w", err)
	}
	rec.Status = domain.ParseFetchStatus(status)
	rec.Duration = time.Duration(durationNS)
	rec.At = time.Unix(0, atNS).UTC()
	return rec, nil
}
