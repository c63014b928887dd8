// Package kv holds the key-value backends the record map is persisted to.
// Every backend is synchronous: a call returns once the value is stored.
package kv

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rustyeddy/tradecal/config"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value at key. found is false when the key was never set.
	Get(key string) (value string, found bool, err error)
	// Set replaces the value at key.
	Set(key, value string) error
	Close() error
}

// Open returns the backend selected by cfg.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.Path)
	case "sqlite":
		return NewSQLite(cfg.Path)
	case "redis":
		return NewRedis(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
