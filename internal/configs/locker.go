package config

import (
	"log"

	"github.com/redis/rueidis"

	"github.com/salmanakber/mayaopps-sub001/internal/locks"
)

// NewLocker builds the assignment lock for cfg.LockBackend. The returned
// client is nil for the local backend.
func NewLocker(cfg Config) (locks.Locker, rueidis.Client) {
	if cfg.LockBackend == LockBackendRedis {
		client := NewRedisClient(cfg.RedisAddr)
		log.Printf("assignment locks backed by redis at %s", cfg.RedisAddr)
		return locks.NewRedisLocker(client, cfg.LockKeyPrefix, cfg.LockTTL, cfg.LockWait), client
	}

	log.Println("assignment locks held in process")
	return locks.NewLocalLocker(cfg.LockWait), nil
}
