package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ivolkoff/shopsync/internal/config"
	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/migrations"
)

// DB wraps the SQLite connection used by the local store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if cfg.Path != ":memory:" {
		if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file")
		}
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// A single connection serializes writers; SQLite allows one writer at a
	// time and this avoids SQLITE_BUSY under concurrent save/merge calls.
	conn.SetMaxOpenConns(1)

	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

// Migrate applies pending schema migrations to the local database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
