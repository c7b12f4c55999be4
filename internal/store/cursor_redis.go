package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/redis/go-redis/v9"
)

// cursorKeyPrefix namespaces cursor keys so the store can share a redis
// database with other consumers.
const cursorKeyPrefix = "cursor:"

// redisCursorStore is the redis-backed [CursorStore] backend. Each cursor
// lives under its own key ("cursor:<collection>") with no expiry.
type redisCursorStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisCursorStore connects to redis using the given settings and returns
// a [CursorStore] on success. The connection is verified with a ping.
func NewRedisCursorStore(ctx context.Context, cfg config.Redis, log *logger.Logger) (CursorStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisCursorStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	log.Debug().Str("func", "NewRedisCursorStore").Msg("connected to redis successfully")

	return &redisCursorStore{
		client: client,
		logger: log,
	}, nil
}

// Get returns the persisted cursor for the collection. A missing key reports 0.
func (r *redisCursorStore) Get(ctx context.Context, collection string) (int64, error) {
	log := logger.FromContext(ctx)

	value, err := r.client.Get(ctx, cursorKeyPrefix+collection).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "redisCursorStore.Get").
			Str("collection", collection).
			Msg("failed to read version cursor")
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	version, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Err(err).
			Str("func", "redisCursorStore.Get").
			Str("collection", collection).
			Str("value", value).
			Msg("failed to parse stored cursor value")
		return 0, fmt.Errorf("failed to parse cursor: %w", err)
	}

	return version, nil
}

// Set stores the cursor for the collection, overwriting any previous value.
func (r *redisCursorStore) Set(ctx context.Context, collection string, version int64) error {
	log := logger.FromContext(ctx)

	err := r.client.Set(ctx, cursorKeyPrefix+collection, strconv.FormatInt(version, 10), 0).Err()
	if err != nil {
		log.Err(err).
			Str("func", "redisCursorStore.Set").
			Str("collection", collection).
			Int64("version", version).
			Msg("failed to write version cursor")
		return fmt.Errorf("failed to set cursor: %w", err)
	}

	return nil
}
