package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"blog/internal/errors"
	"blog/internal/infra/persistence/migrations"
	"blog/internal/infra/persistence/model"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// migratePostgres applies the embedded goose migrations.
func migratePostgres(logger *slog.Logger) migrateFunc {
	return func(ctx context.Context, db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.WithStack(err)
		}

		goose.SetBaseFS(migrations.Migrations)
		goose.SetLogger(&gooseLogger{logger: logger})
		if err := goose.SetDialect("postgres"); err != nil {
			return errors.WithStack(err)
		}

		return errors.Wrap(goose.UpContext(ctx, sqlDB, "."), "goose up")
	}
}

// AutoMigrate creates or alters tables from the gorm models. Used for SQLite,
// where the PostgreSQL migrations do not apply. Struct tags cannot express
// expression indexes, so the case-insensitive title index is added by hand.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return errors.Wrap(
		db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_blogs_title ON blogs (LOWER(title))").Error,
		"create blog title index",
	)
}

type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose", slog.String("message", fmt.Sprintf(format, v...)))
	os.Exit(1)
}
