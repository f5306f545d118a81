package database

import (
	"strings"

	"blog/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens a SQLite database at path. ":memory:" gives a private
// in-process database that lives as long as the returned handle.
func OpenSQLite(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path must be set")
	}

	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path
	}
	dsn += "?_foreign_keys=on&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		// Map driver constraint errors to gorm.ErrDuplicatedKey and friends.
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// One connection: SQLite serialises writers anyway, and an in-memory
	// database exists only on the connection that created it.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
