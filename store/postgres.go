package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-secure-kv/internal/logger"
	"github.com/MKhiriev/go-secure-kv/migrations"
)

// NewPostgresStore connects to the PostgreSQL database at dsn, applies the
// embedded migrations, and returns a [KeyValue] backed by it. Statements
// that fail with a transient error class (connection loss, deadlock,
// serialization failure) are retried.
func NewPostgresStore(ctx context.Context, dsn string, log *logger.Logger) (KeyValue, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if err := migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error applying migrations")
		return nil, err
	}
	log.Info().Str("func", "NewPostgresStore").Msg("connected to database successfully")

	return &sqlStore{
		db:         conn,
		classifier: NewPostgresErrorClassifier(),
		listeners:  NewListenerHub(),
		logger:     log,
	}, nil
}
