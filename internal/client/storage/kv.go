package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

//go:generate moq -out kvstore_mock.go . KVStore

// Well-known keys shared by client services.
const (
	KeyToken         = "token"
	KeyUser          = "user"
	KeyPendingAction = "pending_action"
	KeyLocation      = "location"
	KeyHistory       = "estimation_history"
)

// KVStore is a flat key-value store of JSON blobs on the client.
// It is the lowest storage layer: values are opaque bytes, no schema.
// Implementations must be safe for use from a single goroutine at minimum;
// bbolt, sqlite and memory backends are also safe for concurrent use.
type KVStore interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if the key does not exist
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// HistoryKey returns the history key for a user scope.
// userID 0 means anonymous scope.
func HistoryKey(userID int64) string {
	if userID == 0 {
		return KeyHistory
	}
	return fmt.Sprintf("%s_user_%d", KeyHistory, userID)
}

// GetJSON reads key and unmarshals it into v
// Returns ErrKeyNotFound if the key does not exist
func GetJSON(ctx context.Context, kv KVStore, key string, v any) error {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// SetJSON marshals v and stores it under key
func SetJSON(ctx context.Context, kv KVStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return kv.Set(ctx, key, data)
}

// IsNotFound reports whether err means the key is absent
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
