package index

import (
	"github.com/starford/scoop/internal/knowledge"
)

// Verify *DB satisfies the knowledge provider and searcher interfaces at compile time.
var (
	_ knowledge.Provider = (*DB)(nil)
	_ knowledge.Searcher = (*DB)(nil)
)
