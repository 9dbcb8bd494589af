package database

import (
	"context"
	"log"
	"net"

	"github.com/go-redis/redis/v8"
)

// RedisOptions are the connection settings for the session store.
type RedisOptions struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis. It returns nil when no host is configured
// or the server is unreachable, so callers can fall back to in-memory sessions.
func NewRedisClient(ctx context.Context, opts RedisOptions) *redis.Client {
	if opts.Host == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, continuing without Redis: %v", err)
		_ = rdb.Close()
		return nil
	}

	log.Println("Redis connection established")
	return rdb
}

// CloseRedis closes the Redis client.
func CloseRedis(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
		log.Println("Redis connection closed.")
	}
}
