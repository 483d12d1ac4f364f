package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-secure-kv/internal/config"
	"github.com/MKhiriev/go-secure-kv/internal/logger"
	"github.com/MKhiriev/go-secure-kv/models"
)

// defaultRedisHashKey is where entries live when the config does not name
// a hash.
const defaultRedisHashKey = "securekv:entries"

// redisStore keeps the whole store in a single Redis hash: field = storage
// key, value = stored string. One hash keeps Keys cheap (HKEYS) and spares
// the rest of the keyspace from scans.
type redisStore struct {
	client    *redis.Client
	hashKey   string
	listeners *ListenerHub
	logger    *logger.Logger
}

// NewRedisStore connects to Redis per cfg and returns a [KeyValue] backed
// by a single hash.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (KeyValue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	// ping redis
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Debug().Str("func", "NewRedisStore").Msg("connected to redis successfully")

	hashKey := cfg.HashKey
	if hashKey == "" {
		hashKey = defaultRedisHashKey
	}

	return &redisStore{
		client:    client,
		hashKey:   hashKey,
		listeners: NewListenerHub(),
		logger:    log,
	}, nil
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.HGet(ctx, r.hashKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisStore.Get").Msg("failed to read hash field")
		return "", fmt.Errorf("error reading redis hash: %w", err)
	}

	return value, nil
}

func (r *redisStore) Put(ctx context.Context, key string, value string) error {
	if err := r.client.HSet(ctx, r.hashKey, key, value).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisStore.Put").Msg("failed to write hash field")
		return fmt.Errorf("error writing redis hash: %w", err)
	}

	r.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangePut})

	return nil
}

func (r *redisStore) Remove(ctx context.Context, key string) error {
	removed, err := r.client.HDel(ctx, r.hashKey, key).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisStore.Remove").Msg("failed to delete hash field")
		return fmt.Errorf("error deleting redis hash field: %w", err)
	}

	if removed > 0 {
		r.listeners.Notify(models.ChangeEvent{Key: key, Kind: models.ChangeRemove})
	}

	return nil
}

func (r *redisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.client.HKeys(ctx, r.hashKey).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "redisStore.Keys").Msg("failed to list hash fields")
		return nil, fmt.Errorf("error listing redis hash fields: %w", err)
	}

	return keys, nil
}

func (r *redisStore) Subscribe(listener models.ChangeListener) func() {
	return r.listeners.Subscribe(listener)
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
