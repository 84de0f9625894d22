package index

import (
	"fmt"
	"time"

	"github.com/starford/scoop/internal/apperr"
	"github.com/starford/scoop/internal/checksum"
	"github.com/starford/scoop/internal/models"
)

// Load returns every stored topic in position order. An empty table is
// reported as apperr.ErrNotFound so the caller can seed defaults.
func (db *DB) Load() ([]models.Entry, error) {
	rows, err := db.conn.Query(`SELECT topic, definition FROM topics ORDER BY position, topic`)
	if err != nil {
		return nil, fmt.Errorf("index: load: %w", err)
	}
	defer rows.Close()

	var out []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.Topic, &e.Definition); err != nil {
			return nil, fmt.Errorf("index: scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("index: load: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("index: no topics stored: %w", apperr.ErrNotFound)
	}
	return out, nil
}

// Save replaces the stored topics with entries inside one transaction.
// Rows whose definition and position are unchanged are left alone.
func (db *DB) Save(entries []models.Entry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	existing := make(map[string]struct{})
	rows, err := tx.Query(`SELECT topic FROM topics`)
	if err != nil {
		return fmt.Errorf("index: list topics: %w", err)
	}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			rows.Close()
			return fmt.Errorf("index: scan: %w", err)
		}
		existing[t] = struct{}{}
	}
	rows.Close()

	stmt, err := tx.Prepare(`
		INSERT INTO topics (topic, definition, position, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(topic) DO UPDATE SET
			definition = excluded.definition,
			position   = excluded.position,
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
		WHERE topics.checksum != excluded.checksum OR topics.position != excluded.position
	`)
	if err != nil {
		return fmt.Errorf("index: prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, e := range entries {
		cs := checksum.String(e.Definition)
		res, err := stmt.Exec(e.Topic, e.Definition, i, cs, now)
		if err != nil {
			return fmt.Errorf("index: upsert %q: %w", e.Topic, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			if err := ftsUpsert(tx, e.Topic, e.Definition); err != nil {
				return err
			}
		}
		delete(existing, e.Topic)
	}

	for topic := range existing {
		ftsDelete(tx, topic)
		if _, err := tx.Exec(`DELETE FROM topics WHERE topic = ?`, topic); err != nil {
			return fmt.Errorf("index: delete %q: %w", topic, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored topics.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT count(*) FROM topics`).Scan(&n); err != nil {
		return 0, fmt.Errorf("index: count: %w", err)
	}
	return n, nil
}
