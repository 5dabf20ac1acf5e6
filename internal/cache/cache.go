// Package cache provides the byte caches used for fetched pages and
// geocoding results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/pvoronin/newsgauge/internal/model"
)

// Cache is the minimal byte-store contract shared by the memory, disk and
// layered implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "newsgauge:v1:" + hex.EncodeToString(hash[:])
}

// New builds a cache from config: layered when a disk directory is set,
// memory-only otherwise, nil when caching is disabled.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir != "" {
		return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
	}
	return NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
}
