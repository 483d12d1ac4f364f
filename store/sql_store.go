package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-kv/internal/logger"
	"github.com/MKhiriev/go-secure-kv/models"
)

// retryWaits are the pauses between attempts at a statement the
// classifier marked retryable.
var retryWaits = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// sqlStore implements [KeyValue] over database/sql. The SQLite and the
// PostgreSQL backends are both this type with a different driver behind
// the connection; the query text is shared.
type sqlStore struct {
	db         *sql.DB
	classifier ErrorClassificator // nil when the dialect has no retryable error classes
	listeners  *ListenerHub
	logger     *logger.Logger
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Get").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Get").Msg("failed to execute select query")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlStore) Put(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertEntryQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Put").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Put").Msg("failed to execute upsert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangePut})

	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveEntryQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Remove").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = s.withRetry(ctx, func() error {
		result, execErr := s.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Remove").Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected > 0 {
		s.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangeRemove})
	}

	return nil
}

func (s *sqlStore) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery()
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Keys").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlStore.Keys").Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 50)

	for rows.Next() {
		var key string
		if scanErr := rows.Scan(&key); scanErr != nil {
			log.Err(scanErr).Str("func", "sqlStore.Keys").Msg("failed to scan entry key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, key)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "sqlStore.Keys").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}

func (s *sqlStore) Subscribe(listener models.ChangeListener) func() {
	return s.listeners.Subscribe(listener)
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

// withRetry runs op, repeating it when the classifier marks the failure
// retryable. Stores without a classifier fail immediately.
func (s *sqlStore) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || s.classifier == nil {
		return err
	}

	for _, wait := range retryWaits {
		if s.classifier.Classify(err) != Retryable {
			return err
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}

		if err = op(); err == nil {
			return nil
		}
	}

	return err
}
