package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

const cacheTTL = 30 * time.Minute

// Connect is best-effort. The cache is an accelerator, every caller must
// survive a nil client or a failed round trip.
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unavailable, continuing without cache: ", err)
		Rdb = nil
	}
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if Rdb == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, payload, cacheTTL).Err()
}

func GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if Rdb == nil {
		return false, nil
	}
	payload, err := Rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
