package index

import (
	"log/slog"

	"github.com/starford/scoop/internal/models"
)

// Source is anything entries can be imported from, such as a JSON knowledge file.
type Source interface {
	Load() ([]models.Entry, error)
}

// Seed imports src into db when db holds no topics yet. It returns the number
// of imported entries. A src that cannot be loaded is skipped with a warning.
func Seed(db *DB, src Source, logger *slog.Logger) (int, error) {
	n, err := db.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	entries, err := src.Load()
	if err != nil {
		logger.Warn("seed: source unavailable", slog.String("error", err.Error()))
		return 0, nil
	}
	if len(entries) == 0 {
		return 0, nil
	}
	if err := db.Save(entries); err != nil {
		return 0, err
	}
	logger.Info("seed: imported topics", slog.Int("count", len(entries)))
	return len(entries), nil
}
