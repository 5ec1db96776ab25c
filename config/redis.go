package config

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis initializes the shared redis client used for the real-time
// event channel. Redis is optional: when REDIS_URL is unset the client stays
// nil and broadcasting becomes a no-op.
func ConnectRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set, real-time events disabled")
		return
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Invalid REDIS_URL, real-time events disabled: %v", err)
		return
	}

	Redis = redis.NewClient(opts)
}
