// Package cache stores computed correction results between runs.
//
// Implementations:
//
//	FileCache - one JSON entry file per key under a directory, with optional expiry.
//	NullCache - never stores anything; used when caching is disabled.
//
// Keys are built with Key, a SHA-256 over a JSON encoding of the parts, so any
// change in the embedding values or correction options yields a new key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the value and true on a hit, (nil, false, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// Key returns "prefix:sha256(json(parts))".
func Key(prefix string, parts ...interface{}) (string, error) {
	data, err := json.Marshal(parts)
	if err != nil {
		return "", fmt.Errorf("cache: key %s: %w", prefix, err)
	}

	return prefix + ":" + Hash(data), nil
}
