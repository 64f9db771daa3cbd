package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"pincab/internal/domain"
	"pincab/internal/store"
)

// canonical still-image type preferred among wheel candidates
const wheelPreferredMime = "image/png"

// WheelResolver resolves and memoizes the wheel image reference for each
// table. At most one resolution attempt runs per id: concurrent first calls
// share a single lookup, and the result, including "no image", is memoized so
// repeated lookups never recompute. Media indexes read through the cabinet
// store, so a table's index survives restarts and is fetched from the backend
// at most once until invalidated. There is no per-entry eviction; Reset wipes
// the memo wholesale when the backend identity changes.
type WheelResolver struct {
	repo   domain.MediaRepository
	store  *store.CabinetStore
	logger *slog.Logger

	mu    sync.RWMutex
	memo  map[string]*domain.WheelRef // nil value = resolved to "no image"
	group singleflight.Group
}

// NewWheelResolver creates a new wheel resolver
func NewWheelResolver(repo domain.MediaRepository, st *store.CabinetStore, logger *slog.Logger) *WheelResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &WheelResolver{
		repo:   repo,
		store:  st,
		logger: logger,
		memo:   make(map[string]*domain.WheelRef),
	}
}

// ResolveWheel returns the wheel reference for a table, nil when the table
// has no wheel image. Fetch errors resolve to nil as well: absence and
// failure are both memoized and never retried automatically.
func (r *WheelResolver) ResolveWheel(ctx context.Context, gameID string) *domain.WheelRef {
	r.mu.RLock()
	if ref, ok := r.memo[gameID]; ok {
		r.mu.RUnlock()
		return ref
	}
	r.mu.RUnlock()

	v, _, _ := r.group.Do(gameID, func() (interface{}, error) {
		ref := r.resolve(ctx, gameID)
		r.mu.Lock()
		r.memo[gameID] = ref
		r.mu.Unlock()
		return ref, nil
	})

	ref, _ := v.(*domain.WheelRef)
	return ref
}

// resolve performs the single index lookup for one id, store first.
func (r *WheelResolver) resolve(ctx context.Context, gameID string) *domain.WheelRef {
	idx, ok := r.store.GetMediaIndex(gameID)
	if !ok {
		var err error
		idx, err = r.repo.GetMediaIndex(ctx, gameID)
		if err != nil {
			r.logger.Debug("media lookup failed", "gameID", gameID, "error", err)
			return nil
		}
		if err := r.store.SaveMediaIndex(gameID, idx); err != nil {
			r.logger.Warn("failed to cache media index", "error", err, "gameID", gameID)
		}
	}

	candidates := idx.Wheel()
	if len(candidates) == 0 {
		return nil
	}

	entry := candidates[0]
	for _, c := range candidates {
		if strings.EqualFold(c.MimeType, wheelPreferredMime) {
			entry = c
			break
		}
	}

	return &domain.WheelRef{
		URL: r.repo.MediaURL(entry.GameID, "Wheel", entry.Name),
	}
}

// Cached returns the memoized reference without triggering resolution.
func (r *WheelResolver) Cached(gameID string) (*domain.WheelRef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.memo[gameID]
	return ref, ok
}

// Reset wipes the memo. Used when the base address changes and every cached
// URL points at the wrong backend.
func (r *WheelResolver) Reset() {
	r.mu.Lock()
	r.memo = make(map[string]*domain.WheelRef)
	r.mu.Unlock()
}
