package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const TOMLConfigFileName = "config.toml"

// TOMLConfig mirrors the overlay file ~/.config/swerve/config.toml.
// Pointer/nil fields distinguish "unset" from explicit values.
type TOMLConfig struct {
	ToolbarPosition  string         `toml:"toolbar_position"`
	Homepage         string         `toml:"homepage"`
	RTL              *bool          `toml:"rtl"`
	TelemetryEnabled *bool          `toml:"telemetry"`
	Gesture          *GestureConfig `toml:"gesture"`
}

// LoadTOMLConfig reads the TOML overlay. Returns (nil, nil) when the file
// does not exist.
func LoadTOMLConfig() (*TOMLConfig, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return loadTOMLConfigFrom(filepath.Join(configDir, TOMLConfigFileName))
}

func loadTOMLConfigFrom(path string) (*TOMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read TOML config: %w", err)
	}

	var cfg TOMLConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return &cfg, nil
}
