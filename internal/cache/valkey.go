package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const concertListKey = "concerts:list"

type ValkeyClient struct {
	client  *redis.Client
	listTTL time.Duration
}

func NewValkeyClient() (*ValkeyClient, error) {
	addr := os.Getenv("VALKEY_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	password := os.Getenv("VALKEY_PASSWORD")

	listTTL := 30 * time.Second
	if val := os.Getenv("VALKEY_LIST_TTL"); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			listTTL = parsed
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	return &ValkeyClient{
		client:  rdb,
		listTTL: listTTL,
	}, nil
}

// GetConcertListRaw returns the cached concert-list response as raw
// JSON, avoiding an unmarshal/marshal round trip on the hot path.
func (v *ValkeyClient) GetConcertListRaw(ctx context.Context) ([]byte, error) {
	data, err := v.client.Get(ctx, concertListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("concert list not in cache")
		}
		return nil, fmt.Errorf("cache lookup error: %w", err)
	}
	return data, nil
}

// SetConcertList stores the concert-list response. Failures are
// returned for logging only; callers never fail a request over them.
func (v *ValkeyClient) SetConcertList(ctx context.Context, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal concert list: %w", err)
	}
	return v.client.Set(ctx, concertListKey, data, v.listTTL).Err()
}

// InvalidateConcertList drops the cached list. Called after any
// booking or concert create, since both change the cached counters.
func (v *ValkeyClient) InvalidateConcertList(ctx context.Context) error {
	return v.client.Del(ctx, concertListKey).Err()
}

func (v *ValkeyClient) Close() error {
	return v.client.Close()
}
