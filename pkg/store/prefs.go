// Package store persists small user preferences between sessions. Domain
// data (users, messages, announcements) is deliberately not stored; only the
// theme choice survives a restart, and losing it merely falls back to the
// terminal's ambient default.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const themeKey = "theme"

// Preferences is a tiny diskv-backed key store.
type Preferences struct {
	d *diskv.Diskv
}

// Open creates a Preferences rooted under the config base path.
func Open(cfg *Config) (*Preferences, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Preferences{d: diskv.New(diskv.Options{
		BasePath:     filepath.Join(cfg.BasePath, "prefs"),
		CacheSizeMax: 1024, // preferences are a handful of tiny values
	})}, nil
}

// Theme returns the stored theme name, or "" when none is stored.
func (p *Preferences) Theme() string {
	if p == nil || p.d == nil {
		return ""
	}
	raw, err := p.d.Read(themeKey)
	if err != nil {
		return ""
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return ""
	}
	return theme
}

// SetTheme stores the theme name.
func (p *Preferences) SetTheme(theme string) error {
	if p == nil || p.d == nil {
		return nil
	}
	raw, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("store: encode theme: %w", err)
	}
	if err := p.d.Write(themeKey, raw); err != nil {
		return fmt.Errorf("store: write theme: %w", err)
	}
	return nil
}
