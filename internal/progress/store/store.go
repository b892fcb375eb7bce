// Package store persists the user-progress aggregate. Two drivers exist: a
// sqlite database and a plain JSON file, both holding one serialized record
// under a fixed key.
package store

import (
	"context"
	"fmt"

	"github.com/celestial/celestial-chronicles/internal/model"
)

// StorageKey is the fixed key the single progress record lives under.
const StorageKey = "celestial-chronicles-progress"

// Store reads and writes serialized UserProgress records.
// Load returns model.ErrNotFound when no record exists under the key.
type Store interface {
	Load(ctx context.Context, key string) (*model.UserProgress, error)
	Save(ctx context.Context, key string, p *model.UserProgress) error
	Ping(ctx context.Context) error
	Close() error
}

// Open selects a driver by name. Supported drivers: "sqlite", "jsonfile".
func Open(driver, path string) (Store, error) {
	switch driver {
	case "sqlite":
		return OpenSQLite(path)
	case "jsonfile":
		return NewJSONFile(path), nil
	default:
		return nil, fmt.Errorf("unsupported progress store driver: %s", driver)
	}
}
