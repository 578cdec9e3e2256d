// Package prefs persists devicedeck user preferences in
// ~/.config/devicedeck/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/devicedeck/internal/config"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	// FixedSlots draws all four comparison columns even when some are empty.
	FixedSlots *bool `toml:"fixed_slots"`
}

const (
	defaultPrefsPath = "~/.config/devicedeck/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	fixed := true
	return Prefs{Theme: defaultTheme, FixedSlots: &fixed}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// UseFixedSlots reports the effective slot layout.
func (p Prefs) UseFixedSlots() bool {
	return p.FixedSlots == nil || *p.FixedSlots
}

// WithFixedSlots returns a copy with the slot layout set.
func (p Prefs) WithFixedSlots(fixed bool) Prefs {
	p.FixedSlots = &fixed
	return p
}

// Load reads preferences from path. Any problem reading or decoding the
// file yields the defaults.
func Load(path string) Prefs {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}

	var stored Prefs
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return prefs
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		prefs.Theme = theme
	}
	if stored.FixedSlots != nil {
		prefs.FixedSlots = stored.FixedSlots
	}
	return prefs
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
