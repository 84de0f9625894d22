//go:build sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/starford/scoop/internal/models"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS topics_fts USING fts5(
			topic,
			definition,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsUpsert(tx *sql.Tx, topic, definition string) error {
	_, _ = tx.Exec(`DELETE FROM topics_fts WHERE topic = ?`, topic)
	_, err := tx.Exec(`INSERT INTO topics_fts (topic, definition) VALUES (?, ?)`, topic, definition)
	if err != nil {
		return fmt.Errorf("index: upsert fts: %w", err)
	}
	return nil
}

func ftsDelete(tx *sql.Tx, topic string) {
	_, _ = tx.Exec(`DELETE FROM topics_fts WHERE topic = ?`, topic)
}

// ftsQuery quotes every term so user input cannot inject FTS5 syntax.
func ftsQuery(query string) string {
	terms := strings.Fields(query)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

// Search performs an FTS5 full-text search over topics and definitions, best match first.
func (db *DB) Search(query string, limit int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	q := ftsQuery(query)
	if q == "" {
		return nil, nil
	}
	rows, err := db.conn.Query(`
		SELECT topic, definition
		FROM topics_fts
		WHERE topics_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, q, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.Topic, &e.Definition); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
