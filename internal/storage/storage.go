package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a string-keyed store of opaque values. Implementations must
// acknowledge a write only once it is durable for their backend.
type Store interface {
	// Get returns found=false with a nil error for a missing key.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

const (
	KeyPrefix      = "sneaker_inventory"
	CurrentUserKey = KeyPrefix + "_user"
	UsersKey       = KeyPrefix + "_users"
	CredentialsKey = KeyPrefix + "_credentials"
)

// InventoryKey is the namespace holding one user's sneakers.
func InventoryKey(userID string) string {
	return KeyPrefix + "_" + userID
}

func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {

	data, found, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}

	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	return s.Set(ctx, key, data)
}
