package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-secure-kv/internal/logger"
)

// sqliteSchema creates the entries table on open. SQLite deployments skip
// the migration runner; the schema is small enough to apply inline.
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

// NewSQLiteStore opens (creating when needed) the SQLite database at dsn
// and returns a [KeyValue] backed by it.
func NewSQLiteStore(ctx context.Context, dsn string, log *logger.Logger) (KeyValue, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating entries table")
		return nil, fmt.Errorf("error creating entries table: %w", err)
	}
	log.Debug().Str("func", "NewSQLiteStore").Msg("connected to database successfully")

	return &sqlStore{
		db:        conn,
		listeners: NewListenerHub(),
		logger:    log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
