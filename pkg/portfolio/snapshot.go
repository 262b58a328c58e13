package portfolio

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cemremete/gitfolio/pkg/cache"
)

// SnapshotTTL is how long a cached snapshot stays valid.
const SnapshotTTL = 30 * time.Minute

// snapshotKey is the single cache slot. A fetch for a new username
// overwrites it, evicting the previous user's snapshot.
const snapshotKey = "snapshot"

// SnapshotStore persists at most one UserData snapshot at a time on top of a
// cache backend. Caching is a performance optimization, never a correctness
// dependency: every storage failure is logged and treated as a miss or no-op.
type SnapshotStore struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewSnapshotStore creates a snapshot store.
// A nil cache disables caching; a nil logger discards log output.
func NewSnapshotStore(c cache.Cache, logger *log.Logger) *SnapshotStore {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &SnapshotStore{cache: c, logger: logger}
}

// Load returns the stored snapshot only when the stored username matches
// exactly and the entry is still fresh. Anything else is a miss.
func (s *SnapshotStore) Load(ctx context.Context, username string) (*UserData, bool) {
	data, hit, err := s.cache.Get(ctx, snapshotKey)
	if err != nil {
		s.logger.Warn("snapshot read failed, treating as miss", "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var ud UserData
	if err := json.Unmarshal(data, &ud); err != nil {
		s.logger.Warn("corrupted snapshot, treating as miss", "err", err)
		return nil, false
	}
	if ud.Username != username {
		return nil, false
	}
	return &ud, true
}

// Store overwrites the snapshot slot unconditionally. Failures are logged
// and swallowed.
func (s *SnapshotStore) Store(ctx context.Context, ud *UserData) {
	data, err := json.Marshal(ud)
	if err != nil {
		s.logger.Warn("snapshot marshal failed", "err", err)
		return
	}
	if err := s.cache.Set(ctx, snapshotKey, data, SnapshotTTL); err != nil {
		s.logger.Warn("snapshot write failed", "err", err)
	}
}

// Clear removes the snapshot. Failures are logged and swallowed.
func (s *SnapshotStore) Clear(ctx context.Context) {
	if err := s.cache.Delete(ctx, snapshotKey); err != nil {
		s.logger.Warn("snapshot delete failed", "err", err)
	}
}
