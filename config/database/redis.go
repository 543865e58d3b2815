package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/muizrexhepi/menyro-sub000/config/environment"
)

var RedisClient *redis.Client

// InitRedis connects the Redis client used for the onboarding state
// slots and the facet cache. A failed ping is logged, not fatal: the
// stores degrade gracefully without it.
func InitRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     environment.GetRedisAddr(),
		Password: environment.GetRedisPassword(),
		DB:       0,
	})

	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis not reachable at %s: %v", environment.GetRedisAddr(), err)
		return
	}
	log.Println("Redis initialized successfully")
}

// GetRedisClient returns the Redis client instance
func GetRedisClient() *redis.Client {
	return RedisClient
}
