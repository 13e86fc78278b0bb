// Package metadata is the client's durable key/value store. The token store
// keeps the access token, refresh token and device id here between runs.
package metadata

import (
	"context"
)

// Repository persists small string values under fixed keys.
//
// Get returns ("", false, nil) for an absent key. Set with an empty value
// deletes the key, mirroring how absent and empty are indistinguishable to
// callers.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
