package dial

import (
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Profile holds the deployment tunables of the navigation engine: how
// long history stays fresh and how rotation accelerates. Authors ship it
// as a TOML file next to their app config:
//
//	[focus_history]
//	policy = "expire-after"        # disabled | never-expire | expire-after
//	expiration_ms = 10000
//
//	[region_history]
//	policy = "expire-after"
//	expiration_ms = 10000
//
//	[rotation]
//	acceleration_2x_ms = 50
//	acceleration_3x_ms = 25
type Profile struct {
	FocusHistory  HistoryConfig  `toml:"focus_history"`
	RegionHistory HistoryConfig  `toml:"region_history"`
	Rotation      RotationConfig `toml:"rotation"`
}

// HistoryConfig configures one history store of the region cache.
type HistoryConfig struct {
	// Policy is one of "disabled", "never-expire", or "expire-after".
	Policy string `toml:"policy"`
	// ExpirationMS is the expire-after time-to-live in milliseconds.
	ExpirationMS int64 `toml:"expiration_ms"`
}

// RotationConfig configures rotation acceleration thresholds in
// milliseconds between detents. Zero disables a tier.
type RotationConfig struct {
	Acceleration2xMS int64 `toml:"acceleration_2x_ms"`
	Acceleration3xMS int64 `toml:"acceleration_3x_ms"`
}

// DefaultProfile returns the profile used when no file overrides it:
// ten-second expiring history and stock acceleration thresholds.
func DefaultProfile() Profile {
	return Profile{
		FocusHistory: HistoryConfig{
			Policy:       PolicyExpireAfter.String(),
			ExpirationMS: int64(defaultHistoryTTL / time.Millisecond),
		},
		RegionHistory: HistoryConfig{
			Policy:       PolicyExpireAfter.String(),
			ExpirationMS: int64(defaultHistoryTTL / time.Millisecond),
		},
		Rotation: RotationConfig{
			Acceleration2xMS: int64(defaultAccel2x / time.Millisecond),
			Acceleration3xMS: int64(defaultAccel3x / time.Millisecond),
		},
	}
}

// LoadProfile reads a TOML profile from path, falling back to the
// defaults when the file does not exist. Fields omitted from the file
// keep their default values.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile for author mistakes.
func (p Profile) Validate() error {
	if err := p.FocusHistory.validate("focus_history"); err != nil {
		return err
	}
	if err := p.RegionHistory.validate("region_history"); err != nil {
		return err
	}
	if p.Rotation.Acceleration2xMS < 0 || p.Rotation.Acceleration3xMS < 0 {
		return fmt.Errorf("rotation: acceleration thresholds cannot be negative")
	}
	return nil
}

func (h HistoryConfig) validate(section string) error {
	policy, err := ParseCachePolicy(h.Policy)
	if err != nil {
		return fmt.Errorf("%s: %w", section, err)
	}
	if policy == PolicyExpireAfter && h.ExpirationMS <= 0 {
		return fmt.Errorf("%s: expire-after requires a positive expiration_ms", section)
	}
	return nil
}

func (h HistoryConfig) store() (CachePolicy, time.Duration, error) {
	policy, err := ParseCachePolicy(h.Policy)
	if err != nil {
		return PolicyDisabled, 0, err
	}
	return policy, time.Duration(h.ExpirationMS) * time.Millisecond, nil
}

// NewCacheFromProfile builds a region history cache configured per the
// profile. Each region needs its own cache; they are never shared.
func NewCacheFromProfile(p Profile) (*Cache, error) {
	focusPolicy, focusTTL, err := p.FocusHistory.store()
	if err != nil {
		return nil, fmt.Errorf("focus_history: %w", err)
	}
	regionPolicy, regionTTL, err := p.RegionHistory.store()
	if err != nil {
		return nil, fmt.Errorf("region_history: %w", err)
	}
	return NewCache(focusPolicy, focusTTL, regionPolicy, regionTTL)
}
