//go:build !sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/starford/scoop/internal/models"
)

func initFTS(_ *sql.DB) error {
	// FTS5 not available; search uses LIKE on the topics table.
	return nil
}

func ftsUpsert(_ *sql.Tx, _, _ string) error {
	// Definition is already stored in the topics table; nothing extra to do.
	return nil
}

func ftsDelete(_ *sql.Tx, _ string) {}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches query as a literal substring.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// Search performs a LIKE-based search (fallback when FTS5 is not compiled in).
func (db *DB) Search(query string, limit int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	like := likePattern(query)
	rows, err := db.conn.Query(`
		SELECT topic, definition
		FROM topics
		WHERE topic LIKE ? ESCAPE '\' OR definition LIKE ? ESCAPE '\'
		ORDER BY position
		LIMIT ?
	`, like, like, limit)
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
