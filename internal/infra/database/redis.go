package database

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis builds the client backing the insight report cache.
func NewRedis(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
