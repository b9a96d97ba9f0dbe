// Package core implements the catalog engine: ranked-list constraint
// enforcement, overlap matching, engagement aggregation, timeline recording
// and community membership. It signals failures with the error kinds in
// cmd/models and never writes HTTP responses or log lines.
package core

import (
	"sync"
	"time"

	"github.com/toplistapp/toplist-server/store"
)

// Core owns the entity store and a single mutation lock. Every
// check-then-write sequence runs under the lock, so no two concurrent
// mutations can jointly break an invariant (two adds both seeing a
// nine-item list, two likes for the same pair, and so on).
type Core struct {
	store store.Store
	mu    sync.Mutex
	now   func() time.Time
}

func New(st store.Store) *Core {
	return &Core{store: st, now: time.Now}
}

// clampAdd applies a delta to a server-maintained counter, flooring at zero.
// A floor hit means a prior inconsistency, not a caller mistake, so it is
// absorbed rather than reported.
func clampAdd(n, delta int) int {
	n += delta
	if n < 0 {
		return 0
	}
	return n
}
