package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	LockBackend            string
	LockKeyPrefix          string
	LockTTL                time.Duration
	LockWait               time.Duration
	ValidationWorkers      int
	ValidationQueueSize    int
	CloneSchedule          string
	CloneCompanyIDs        []string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "rota.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		LockBackend:            strings.ToLower(getEnv("LOCK_BACKEND", LockBackendLocal)),
		LockKeyPrefix:          getEnv("LOCK_KEY_PREFIX", "rota:lock"),
		LockTTL:                time.Duration(getEnvAsInt("LOCK_TTL_SECONDS", 10)) * time.Second,
		LockWait:               time.Duration(getEnvAsInt("LOCK_WAIT_MILLISECONDS", 2000)) * time.Millisecond,
		ValidationWorkers:      getEnvAsInt("VALIDATION_WORKERS", 4),
		ValidationQueueSize:    getEnvAsInt("VALIDATION_QUEUE_SIZE", 64),
		CloneSchedule:          getEnv("CLONE_SCHEDULE", ""),
		CloneCompanyIDs:        getEnvAsList("CLONE_COMPANY_IDS"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.LockBackend != LockBackendLocal && cfg.LockBackend != LockBackendRedis {
		log.Fatalf("LOCK_BACKEND must be %q or %q", LockBackendLocal, LockBackendRedis)
	}
	if cfg.LockTTL <= 0 {
		log.Fatal("LOCK_TTL_SECONDS must be greater than 0")
	}
	if cfg.LockWait <= 0 {
		log.Fatal("LOCK_WAIT_MILLISECONDS must be greater than 0")
	}
	if cfg.ValidationWorkers <= 0 {
		log.Fatal("VALIDATION_WORKERS must be greater than 0")
	}
	if cfg.ValidationQueueSize <= 0 {
		log.Fatal("VALIDATION_QUEUE_SIZE must be greater than 0")
	}
	if cfg.CloneSchedule != "" && len(cfg.CloneCompanyIDs) == 0 {
		log.Fatal("CLONE_COMPANY_IDS must list at least one company when CLONE_SCHEDULE is set")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
