package ddragon

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ReferenceCache holds the version string and the item/augment name tables.
//
// Two refresh disciplines co-exist: the version is checked lazily against its
// TTL on every read, while the larger name tables are refreshed eagerly by a
// background ticker. Refreshes build fresh maps and swap them in only after a
// fully successful rebuild, so readers never observe a partially built table
// and a failed refresh leaves the previous data intact.
type ReferenceCache struct {
	client          *Client
	logger          *slog.Logger
	fallbackVersion string
	versionTTL      time.Duration
	referenceTTL    time.Duration
	now             func() time.Time

	mu              sync.RWMutex
	version         string
	versionLoadedAt time.Time
	items           map[string]string // itemID -> display name
	augmentsByKey   map[string]Augment
	augmentList     []Augment
	tablesLoadedAt  time.Time

	refreshMu sync.Mutex // serializes concurrent lazy version refreshes
}

// CacheOption configures a ReferenceCache.
type CacheOption func(*ReferenceCache)

// WithClock injects a fake clock for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(rc *ReferenceCache) { rc.now = now }
}

// WithTTLs overrides the version and name-table TTLs.
func WithTTLs(version, reference time.Duration) CacheOption {
	return func(rc *ReferenceCache) {
		rc.versionTTL = version
		rc.referenceTTL = reference
	}
}

// NewReferenceCache creates an empty cache bound to a static-data client.
// fallbackVersion is served when the mirror was never reachable.
func NewReferenceCache(client *Client, fallbackVersion string, logger *slog.Logger, opts ...CacheOption) *ReferenceCache {
	if logger == nil {
		logger = slog.Default()
	}
	rc := &ReferenceCache{
		client:          client,
		logger:          logger,
		fallbackVersion: fallbackVersion,
		versionTTL:      30 * time.Minute,
		referenceTTL:    24 * time.Hour,
		now:             time.Now,
		items:           map[string]string{},
		augmentsByKey:   map[string]Augment{},
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// Load performs the cold-start fill. Failures are logged and absorbed: the
// cache then serves the fallback version and placeholder names until a later
// refresh succeeds.
func (rc *ReferenceCache) Load(ctx context.Context) {
	if err := rc.refreshVersion(ctx); err != nil {
		rc.logger.Warn("initial version load failed, using fallback",
			"fallback", rc.fallbackVersion, "error", err)
	}
	if err := rc.refreshTables(ctx); err != nil {
		rc.logger.Warn("initial reference table load failed, lookups degrade to placeholders",
			"error", err)
	}
}

// StartRefresher runs the eager periodic refresh of the name tables until the
// context is cancelled. Intended to run on its own goroutine.
func (rc *ReferenceCache) StartRefresher(ctx context.Context) {
	ticker := time.NewTicker(rc.referenceTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rc.refreshTables(ctx); err != nil {
				rc.logger.Warn("reference table refresh failed, keeping previous data", "error", err)
			}
		}
	}
}

// Version returns the current game version, lazily refreshing it when the TTL
// has passed. A failed refresh serves the previous value; an empty cache
// serves the hardcoded fallback.
func (rc *ReferenceCache) Version(ctx context.Context) string {
	rc.mu.RLock()
	version := rc.version
	fresh := version != "" && rc.now().Sub(rc.versionLoadedAt) < rc.versionTTL
	rc.mu.RUnlock()

	if fresh {
		return version
	}

	rc.refreshMu.Lock()
	defer rc.refreshMu.Unlock()

	// Another reader may have refreshed while we waited for the lock.
	rc.mu.RLock()
	version = rc.version
	fresh = version != "" && rc.now().Sub(rc.versionLoadedAt) < rc.versionTTL
	rc.mu.RUnlock()
	if fresh {
		return version
	}

	if err := rc.refreshVersion(ctx); err != nil {
		rc.logger.Warn("version refresh failed, serving stale value", "error", err)
	}

	rc.mu.RLock()
	version = rc.version
	rc.mu.RUnlock()
	if version == "" {
		return rc.fallbackVersion
	}
	return version
}

// ItemName resolves an item ID to its display name, or a deterministic
// placeholder embedding the raw ID. Never empty.
func (rc *ReferenceCache) ItemName(id int) string {
	rc.mu.RLock()
	name, ok := rc.items[strconv.Itoa(id)]
	rc.mu.RUnlock()
	if ok && name != "" {
		return name
	}
	return fmt.Sprintf("Item %d", id)
}

// AugmentName resolves an augment by any known keying scheme. Upstream match
// data sometimes reports the numeric ID and sometimes the symbolic API name,
// so the lookup tries an ordered list of interpretations and falls back to a
// deterministic placeholder embedding the raw key. Never empty.
func (rc *ReferenceCache) AugmentName(key string) string {
	if aug, ok := rc.Augment(key); ok {
		return aug.Name
	}
	return fmt.Sprintf("Augment %s", key)
}

// AugmentNameByID resolves a numeric augment ID.
func (rc *ReferenceCache) AugmentNameByID(id int) string {
	return rc.AugmentName(strconv.Itoa(id))
}

// Augment looks up the full augment entry for a key, trying each keying
// scheme in order: the raw key (numeric ID string), then the lowercased
// symbolic API name.
func (rc *ReferenceCache) Augment(key string) (Augment, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	for _, k := range []string{key, strings.ToLower(key)} {
		if aug, ok := rc.augmentsByKey[k]; ok {
			return aug, true
		}
	}
	return Augment{}, false
}

// Augments returns the full augment table in upstream order.
func (rc *ReferenceCache) Augments() []Augment {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	out := make([]Augment, len(rc.augmentList))
	copy(out, rc.augmentList)
	return out
}

// Stats reports cache health for the /health endpoint.
func (rc *ReferenceCache) Stats() map[string]interface{} {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return map[string]interface{}{
		"version":          rc.version,
		"version_loaded":   !rc.versionLoadedAt.IsZero(),
		"items":            len(rc.items),
		"augments":         len(rc.augmentList),
		"tables_loaded_at": rc.tablesLoadedAt,
		"stale":            rc.version == "" || rc.now().Sub(rc.tablesLoadedAt) > rc.referenceTTL,
	}
}

// --------------------------------------------------------------------------
// Refresh internals
// --------------------------------------------------------------------------

func (rc *ReferenceCache) refreshVersion(ctx context.Context) error {
	version, err := rc.client.LatestVersion(ctx)
	if err != nil {
		return err
	}
	rc.mu.Lock()
	rc.version = version
	rc.versionLoadedAt = rc.now()
	rc.mu.Unlock()
	return nil
}

// refreshTables rebuilds both name tables into fresh maps. Only a fully
// successful rebuild is swapped in.
func (rc *ReferenceCache) refreshTables(ctx context.Context) error {
	version := rc.Version(ctx)

	items, err := rc.client.Items(ctx, version)
	if err != nil {
		return fmt.Errorf("items: %w", err)
	}

	augments, err := rc.client.Augments(ctx)
	if err != nil {
		return fmt.Errorf("augments: %w", err)
	}

	byKey := make(map[string]Augment, len(augments)*2)
	for _, aug := range augments {
		byKey[strconv.Itoa(aug.ID)] = aug
		if aug.APIName != "" {
			byKey[strings.ToLower(aug.APIName)] = aug
		}
	}

	rc.mu.Lock()
	rc.items = items
	rc.augmentsByKey = byKey
	rc.augmentList = augments
	rc.tablesLoadedAt = rc.now()
	rc.mu.Unlock()

	rc.logger.Info("reference tables refreshed",
		"version", version, "items", len(items), "augments", len(augments))
	return nil
}
