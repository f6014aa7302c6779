package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/Drolfothesgnir/minidom/util"
	"github.com/redis/go-redis/v9"
)

// ParseResultPrefix is the key prefix of the cached parse results.
const ParseResultPrefix = "parse:"

// ErrCacheMiss is returned when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type Store interface {
	SaveParseResult(ctx context.Context, key string, data dom.SerializableDocument, ttl time.Duration) error
	GetParseResult(ctx context.Context, key string) (*dom.SerializableDocument, error)
	DeleteParseResult(ctx context.Context, key string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// NewStoreFromClient wraps an existing client.
func NewStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ParseResultKey derives the cache key of the markup parsed with the given warnings settings.
// The settings are part of the key since they shape the result.
func ParseResultKey(content string, policy dom.WarningOverflowPolicy, maxWarnings int) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(int(policy))))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(maxWarnings)))
	h.Write([]byte{0})
	h.Write([]byte(content))

	return ParseResultPrefix + hex.EncodeToString(h.Sum(nil))
}

func (store *RedisStore) SaveParseResult(
	ctx context.Context,
	key string,
	data dom.SerializableDocument,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize parse result: %w", err)
	}

	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// GetParseResult returns ErrCacheMiss if the result is not found or expired.
func (store *RedisStore) GetParseResult(ctx context.Context, key string) (*dom.SerializableDocument, error) {
	jsonData, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get parse result: %w", err)
	}

	var result dom.SerializableDocument
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cached result json: %w", err)
	}

	return &result, nil
}

func (store *RedisStore) DeleteParseResult(ctx context.Context, key string) error {
	return store.client.Del(ctx, key).Err()
}

// Ping checks the connection.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}
