package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "top", cfg.ToolbarPosition)
	assert.False(t, cfg.ToolbarAtBottom())
	assert.True(t, cfg.IsTelemetryEnabled(), "telemetry defaults on")
}

func TestConfig_TelemetryToggle(t *testing.T) {
	off := false
	cfg := &Config{TelemetryEnabled: &off}
	assert.False(t, cfg.IsTelemetryEnabled())
}

func TestConfig_RTLOverride(t *testing.T) {
	rtl := true
	cfg := &Config{RTL: &rtl}
	assert.True(t, cfg.IsRTL())
}

func TestLocaleIsRTL(t *testing.T) {
	tests := []struct {
		name    string
		locales []string
		want    bool
	}{
		{"arabic", []string{"ar_SA.UTF-8"}, true},
		{"hebrew", []string{"he_IL.UTF-8"}, true},
		{"english", []string{"en_US.UTF-8"}, false},
		{"first non-empty wins", []string{"", "fa_IR.UTF-8"}, true},
		{"ltr first shadows rtl later", []string{"en_US.UTF-8", "ar_SA.UTF-8"}, false},
		{"all empty", []string{"", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localeIsRTL(tt.locales...))
		})
	}
}

func TestGestureConfig_TuningDefaults(t *testing.T) {
	tuning := GestureConfig{}.Tuning()
	assert.Equal(t, 0.25, tuning.FinishPercent)
	assert.Equal(t, 0.20, tuning.OverscrollHidePercent)
	assert.Equal(t, 250*time.Millisecond, tuning.CompleteDuration)
	assert.Equal(t, 200*time.Millisecond, tuning.CancelDuration)
	assert.Equal(t, 150*time.Millisecond, tuning.FlingCancelDuration)
}

func TestGestureConfig_TuningOverrides(t *testing.T) {
	tuning := GestureConfig{
		Slop:               4,
		FinishPercent:      0.5,
		CancelDurationMs:   80,
		CompleteDurationMs: 120,
	}.Tuning()

	assert.Equal(t, 4.0, tuning.Slop)
	assert.Equal(t, 0.5, tuning.FinishPercent)
	assert.Equal(t, 80*time.Millisecond, tuning.CancelDuration)
	assert.Equal(t, 120*time.Millisecond, tuning.CompleteDuration)
	// Untouched fields keep their defaults.
	assert.Equal(t, 150*time.Millisecond, tuning.FlingCancelDuration)
}

func TestLoadTOMLConfigFrom_MissingFile(t *testing.T) {
	cfg, err := loadTOMLConfigFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadTOMLConfigFrom_ParsesGestureSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
toolbar_position = "bottom"
homepage = "https://example.com"
telemetry = false

[gesture]
slop = 3.0
min_fling_velocity = 40.0
finish_percent = 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadTOMLConfigFrom(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bottom", cfg.ToolbarPosition)
	assert.Equal(t, "https://example.com", cfg.Homepage)
	require.NotNil(t, cfg.TelemetryEnabled)
	assert.False(t, *cfg.TelemetryEnabled)

	require.NotNil(t, cfg.Gesture)
	assert.Equal(t, 3.0, cfg.Gesture.Slop)
	assert.Equal(t, 40.0, cfg.Gesture.MinFlingVelocity)
	assert.Equal(t, 0.3, cfg.Gesture.FinishPercent)
}

func TestLoadTOMLConfigFrom_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0o644))

	_, err := loadTOMLConfigFrom(path)
	assert.Error(t, err)
}
