package dial

import (
	"fmt"
	"time"
)

// CachePolicy controls whether and for how long a history store returns
// saved entries.
type CachePolicy uint8

const (
	// PolicyDisabled never stores and never returns entries.
	PolicyDisabled CachePolicy = iota
	// PolicyNeverExpire returns saved entries regardless of age.
	PolicyNeverExpire
	// PolicyExpireAfter returns saved entries younger than the store's TTL.
	PolicyExpireAfter
)

// String returns the profile name of the policy.
func (p CachePolicy) String() string {
	switch p {
	case PolicyDisabled:
		return "disabled"
	case PolicyNeverExpire:
		return "never-expire"
	case PolicyExpireAfter:
		return "expire-after"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParseCachePolicy converts a profile name into a CachePolicy.
func ParseCachePolicy(s string) (CachePolicy, error) {
	switch s {
	case "disabled":
		return PolicyDisabled, nil
	case "never-expire":
		return PolicyNeverExpire, nil
	case "expire-after":
		return PolicyExpireAfter, nil
	}
	return PolicyDisabled, fmt.Errorf("unknown cache policy %q", s)
}

// store is the policy/TTL pair shared by both history stores.
type store struct {
	policy CachePolicy
	ttl    time.Duration
}

// live reports whether an entry saved at savedAt is still returnable at now.
// An entry exactly at the TTL boundary is expired.
func (s store) live(savedAt, now time.Time) bool {
	switch s.policy {
	case PolicyNeverExpire:
		return true
	case PolicyExpireAfter:
		return now.Sub(savedAt) < s.ttl
	}
	return false
}

// targetEntry is a saved cross-region transition.
type targetEntry struct {
	region  *Region
	savedAt time.Time
}

// Cache is the navigation history for a single Region: the last focused
// descendant (focus history) and the last target region per direction
// (region history). Each store has an independent policy and TTL.
//
// The cache holds non-owning references. It never checks whether a saved
// element or region is still attached and focusable; consumers must
// re-validate every hit before acting on it.
//
// A Cache is owned by exactly one Region and is not safe for concurrent use;
// all access happens on the UI thread.
type Cache struct {
	focusStore  store
	regionStore store

	focused   *Element
	focusedAt time.Time

	targets map[Direction]targetEntry
}

// NewCache creates a Cache with independent policies for the focus history
// (last focused descendant) and the region history (last nudge target per
// direction). Returns an error when an expire-after store is configured with
// a non-positive TTL, or a policy value is out of range.
func NewCache(focusPolicy CachePolicy, focusTTL time.Duration, regionPolicy CachePolicy, regionTTL time.Duration) (*Cache, error) {
	if err := validateStore("focus history", focusPolicy, focusTTL); err != nil {
		return nil, err
	}
	if err := validateStore("region history", regionPolicy, regionTTL); err != nil {
		return nil, err
	}
	return &Cache{
		focusStore:  store{policy: focusPolicy, ttl: focusTTL},
		regionStore: store{policy: regionPolicy, ttl: regionTTL},
		targets:     make(map[Direction]targetEntry),
	}, nil
}

// MustNewCache creates a Cache and panics on configuration errors.
func MustNewCache(focusPolicy CachePolicy, focusTTL time.Duration, regionPolicy CachePolicy, regionTTL time.Duration) *Cache {
	c, err := NewCache(focusPolicy, focusTTL, regionPolicy, regionTTL)
	if err != nil {
		panic(err)
	}
	return c
}

func validateStore(name string, policy CachePolicy, ttl time.Duration) error {
	switch policy {
	case PolicyDisabled, PolicyNeverExpire:
		return nil
	case PolicyExpireAfter:
		if ttl <= 0 {
			return fmt.Errorf("%s cache: expire-after requires a positive TTL, got %v", name, ttl)
		}
		return nil
	}
	return fmt.Errorf("%s cache: unknown policy %d", name, policy)
}

// SaveFocused records el as the last focused descendant, overwriting any
// previous entry. A no-op when the focus history is disabled.
func (c *Cache) SaveFocused(el *Element, now time.Time) {
	if c.focusStore.policy == PolicyDisabled {
		return
	}
	c.focused = el
	c.focusedAt = now
}

// Focused returns the last focused descendant, or nil when nothing was
// saved, the store is disabled, or the entry has expired.
func (c *Cache) Focused(now time.Time) *Element {
	if c.focused == nil || !c.focusStore.live(c.focusedAt, now) {
		return nil
	}
	return c.focused
}

// SaveTarget records region as the nudge target for dir, overwriting any
// previous entry for that direction. A no-op when the region history is
// disabled.
func (c *Cache) SaveTarget(dir Direction, region *Region, now time.Time) {
	if c.regionStore.policy == PolicyDisabled {
		return
	}
	c.targets[dir] = targetEntry{region: region, savedAt: now}
}

// Target returns the saved nudge target for dir, or nil when nothing was
// saved, the store is disabled, or the entry has expired.
func (c *Cache) Target(dir Direction, now time.Time) *Region {
	entry, ok := c.targets[dir]
	if !ok || !c.regionStore.live(entry.savedAt, now) {
		return nil
	}
	return entry.region
}

// ClearRegionHistory drops every saved nudge target. The focus history
// is unaffected; it is only ever replaced by overwrite.
func (c *Cache) ClearRegionHistory() {
	clear(c.targets)
}
