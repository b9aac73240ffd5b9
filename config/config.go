package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kastheco/swerve/gesture"
	"github.com/kastheco/swerve/log"
)

const (
	ConfigFileName  = "config.json"
	SessionFileName = "session.db"
	EventsFileName  = "events.db"
)

// GetConfigDir returns the path to the application's configuration directory,
// XDG-compliant ~/.config/swerve/.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "swerve"), nil
}

// GestureConfig holds the swipe thresholds and settle timings. Values of
// zero fall back to the stock tuning.
type GestureConfig struct {
	// Slop is the minimum drag displacement (cells) before a gesture arms.
	Slop float64 `json:"slop,omitempty" toml:"slop"`
	// MinFlingVelocity is the release speed (cells/s) that counts as a fling.
	MinFlingVelocity float64 `json:"min_fling_velocity,omitempty" toml:"min_fling_velocity"`
	// FinishPercent is the visible preview fraction that completes a gesture.
	FinishPercent float64 `json:"finish_percent,omitempty" toml:"finish_percent"`
	// OverscrollHidePercent bounds rubber-band travel with no swipe target.
	OverscrollHidePercent float64 `json:"overscroll_hide_percent,omitempty" toml:"overscroll_hide_percent"`
	// PreviewOffset is the staged preview's gap beyond the window edge.
	PreviewOffset float64 `json:"preview_offset,omitempty" toml:"preview_offset"`
	// CompleteDurationMs/CancelDurationMs/FlingCancelDurationMs are the
	// settle animation timings in milliseconds.
	CompleteDurationMs    int `json:"complete_duration_ms,omitempty" toml:"complete_duration_ms"`
	CancelDurationMs      int `json:"cancel_duration_ms,omitempty" toml:"cancel_duration_ms"`
	FlingCancelDurationMs int `json:"fling_cancel_duration_ms,omitempty" toml:"fling_cancel_duration_ms"`
}

// Tuning converts the config into gesture tuning, filling unset fields from
// the stock defaults.
func (g GestureConfig) Tuning() gesture.Tuning {
	t := gesture.DefaultTuning()
	if g.Slop > 0 {
		t.Slop = g.Slop
	}
	if g.MinFlingVelocity > 0 {
		t.MinFlingVelocity = g.MinFlingVelocity
	}
	if g.FinishPercent > 0 {
		t.FinishPercent = g.FinishPercent
	}
	if g.OverscrollHidePercent > 0 {
		t.OverscrollHidePercent = g.OverscrollHidePercent
	}
	if g.PreviewOffset > 0 {
		t.PreviewOffset = g.PreviewOffset
	}
	if g.CompleteDurationMs > 0 {
		t.CompleteDuration = time.Duration(g.CompleteDurationMs) * time.Millisecond
	}
	if g.CancelDurationMs > 0 {
		t.CancelDuration = time.Duration(g.CancelDurationMs) * time.Millisecond
	}
	if g.FlingCancelDurationMs > 0 {
		t.FlingCancelDuration = time.Duration(g.FlingCancelDurationMs) * time.Millisecond
	}
	return t
}

// Config represents the application configuration.
type Config struct {
	// ToolbarPosition anchors the toolbar to the "top" or "bottom" edge.
	ToolbarPosition string `json:"toolbar_position"`
	// RTL forces right-to-left layout direction instead of detecting it
	// from the locale environment.
	RTL *bool `json:"rtl,omitempty"`
	// Homepage is the URL new tabs open with.
	Homepage string `json:"homepage"`
	// TelemetryEnabled controls the local gesture event log and crash
	// reporting via Sentry. Defaults to true when not set.
	TelemetryEnabled *bool `json:"telemetry_enabled,omitempty"`
	// Gesture holds the swipe tuning.
	Gesture GestureConfig `json:"gesture,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ToolbarPosition: "top",
		Homepage:        "about:blank",
	}
}

// IsTelemetryEnabled returns whether telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// IsRTL returns the layout direction: the explicit config value when set,
// otherwise a locale-environment guess.
func (c *Config) IsRTL() bool {
	if c.RTL != nil {
		return *c.RTL
	}
	return localeIsRTL(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// ToolbarAtBottom reports whether the toolbar anchors to the bottom edge.
func (c *Config) ToolbarAtBottom() bool {
	return c.ToolbarPosition == "bottom"
}

// localeIsRTL guesses layout direction from the first non-empty locale
// variable. Covers the common right-to-left scripts.
func localeIsRTL(locales ...string) bool {
	rtlLangs := []string{"ar", "he", "fa", "ur", "yi", "dv", "ps", "sd"}
	for _, locale := range locales {
		if locale == "" {
			continue
		}
		for _, lang := range rtlLangs {
			if len(locale) >= len(lang) && locale[:len(lang)] == lang {
				return true
			}
		}
		return false
	}
	return false
}

// LoadConfig loads the JSON config, overlaying the TOML config when present
// (TOML is authority for gesture tuning). Falls back to defaults on any
// failure; a missing file is created with defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return overlayTOML(defaultCfg)
		}

		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}

	return overlayTOML(&config)
}

func overlayTOML(config *Config) *Config {
	tomlResult, err := LoadTOMLConfig()
	if err != nil {
		log.WarningLog.Printf("failed to load TOML config: %v", err)
		return config
	}
	if tomlResult == nil {
		return config
	}

	if tomlResult.ToolbarPosition != "" {
		config.ToolbarPosition = tomlResult.ToolbarPosition
	}
	if tomlResult.Homepage != "" {
		config.Homepage = tomlResult.Homepage
	}
	if tomlResult.RTL != nil {
		config.RTL = tomlResult.RTL
	}
	if tomlResult.TelemetryEnabled != nil {
		config.TelemetryEnabled = tomlResult.TelemetryEnabled
	}
	if tomlResult.Gesture != nil {
		config.Gesture = *tomlResult.Gesture
	}
	return config
}

// saveConfig saves the configuration to disk.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages.
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
