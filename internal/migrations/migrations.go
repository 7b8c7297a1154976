package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Up накатывает все зарегистрированные Go-миграции, файлов с диска не читает
func Up(ctx context.Context, logger *zap.SugaredLogger, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, nil)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.Infow("migration applied", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}

	return nil
}
