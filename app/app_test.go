package app

import (
	"context"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/swerve/config"
	"github.com/kastheco/swerve/tabs"
	"github.com/kastheco/swerve/telemetry"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// recordingRecorder captures emitted events for assertions.
type recordingRecorder struct {
	events []telemetry.Event
}

func (r *recordingRecorder) Emit(e telemetry.Event) { r.events = append(r.events, e) }
func (r *recordingRecorder) Query(telemetry.QueryFilter) ([]telemetry.Event, error) {
	return nil, nil
}
func (r *recordingRecorder) Close() error { return nil }

func (r *recordingRecorder) kinds() []telemetry.EventKind {
	out := make([]telemetry.EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func newTestShell(t *testing.T, cfg *config.Config) (*shell, *recordingRecorder) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	rtl := false
	cfg.RTL = &rtl
	rec := &recordingRecorder{}
	s := newShell(context.Background(), cfg, tabs.NewStore(), nil, rec)
	s.setSize(40, 12)
	return s, rec
}

func (s *shell) drain(t *testing.T) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !s.handler.Animating() {
			return
		}
		s.Update(frameMsg(time.Now()))
	}
	t.Fatal("animation did not finish")
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestNewShell_OpensInitialTab(t *testing.T) {
	s, _ := newTestShell(t, nil)
	assert.Equal(t, 1, s.store.Count(false))

	tab, ok := s.store.Selected(false)
	require.True(t, ok)
	assert.Equal(t, "about:blank", tab.URL)
}

func TestShellTuning_CellScaleDefaults(t *testing.T) {
	tuning := shellTuning(config.GestureConfig{})
	assert.Equal(t, 2.0, tuning.Slop)
	assert.Equal(t, 30.0, tuning.MinFlingVelocity)
	assert.Equal(t, 2.0, tuning.PreviewOffset)

	tuning = shellTuning(config.GestureConfig{Slop: 5, MinFlingVelocity: 80})
	assert.Equal(t, 5.0, tuning.Slop)
	assert.Equal(t, 80.0, tuning.MinFlingVelocity)
}

func TestSwipeLeftSelectsNextTab(t *testing.T) {
	s, rec := newTestShell(t, nil)
	first, _ := s.store.Selected(false)
	second := s.store.Open("https://b.test", "B", false)
	require.NoError(t, s.store.Select(first.ID))

	s.handleMouse(mouse(tea.MouseActionPress, 30, 0))
	for x := 27; x >= 6; x -= 3 {
		s.handleMouse(motion(x, 0))
	}
	s.handleMouse(mouse(tea.MouseActionRelease, 6, 0))
	s.drain(t)

	got, _ := s.store.Selected(false)
	assert.Equal(t, second.ID, got.ID)
	assert.Contains(t, rec.kinds(), telemetry.EventGestureArmed)
	assert.Contains(t, rec.kinds(), telemetry.EventToolbarSwipe)
}

func TestVerticalSwipeFromBottomToolbarOpensTray(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ToolbarPosition = "bottom"
	s, rec := newTestShell(t, cfg)

	s.handleMouse(mouse(tea.MouseActionPress, 20, 11))
	s.handleMouse(motion(20, 8))
	s.handleMouse(motion(20, 5))
	s.handleMouse(mouse(tea.MouseActionRelease, 20, 5))
	s.drain(t)

	assert.Equal(t, stateTray, s.state)
	assert.Contains(t, rec.kinds(), telemetry.EventTrayOpened)
}

func TestDragOutsideToolbarNeverArms(t *testing.T) {
	s, _ := newTestShell(t, nil)

	s.handleMouse(mouse(tea.MouseActionPress, 20, 6))
	s.handleMouse(motion(10, 6))
	s.handleMouse(mouse(tea.MouseActionRelease, 10, 6))

	assert.False(t, s.handler.Animating())
	assert.Equal(t, stateBrowsing, s.state)
}

func TestAddressEditCommitNavigates(t *testing.T) {
	s, _ := newTestShell(t, nil)

	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.Equal(t, stateAddress, s.state)
	require.True(t, s.addressInput.Focused())

	s.addressInput.SetValue("example.com")
	s.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	tab, _ := s.store.Selected(false)
	assert.Equal(t, "https://example.com", tab.URL)
	assert.Equal(t, "example.com", tab.Title)
	assert.Equal(t, stateBrowsing, s.state)
}

func TestAddressEditEscapeCancels(t *testing.T) {
	s, _ := newTestShell(t, nil)
	before, _ := s.store.Selected(false)

	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	s.addressInput.SetValue("changed")
	s.handleKey(tea.KeyMsg{Type: tea.KeyEscape})

	after, _ := s.store.Selected(false)
	assert.Equal(t, before.URL, after.URL)
	assert.Equal(t, stateBrowsing, s.state)
	assert.False(t, s.addressInput.Focused())
}

func TestAddressKeysRouteThroughTextInput(t *testing.T) {
	s, _ := newTestShell(t, nil)

	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.Equal(t, stateAddress, s.state)
	assert.Equal(t, "about:blank", s.addressInput.Value(), "address edit starts from the current URL")

	s.addressInput.SetValue("ab")
	s.addressInput.CursorEnd()
	s.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "axb", s.addressInput.Value(), "cursor movement inserts mid-string")

	s.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ab", s.addressInput.Value())
}

func TestTogglePrivatePartitionsTabs(t *testing.T) {
	s, _ := newTestShell(t, nil)

	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.True(t, s.privateMode)
	assert.Equal(t, 0, s.store.Count(true))

	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, 1, s.store.Count(true))
	tab, _ := s.store.Selected(true)
	assert.True(t, tab.Private)
}

func TestCycleTabWraps(t *testing.T) {
	s, _ := newTestShell(t, nil)
	first, _ := s.store.Selected(false)
	s.store.Open("https://b.test", "B", false)
	require.NoError(t, s.store.Select(first.ID))

	s.cycleTab(-1)
	got, _ := s.store.Selected(false)
	assert.NotEqual(t, first.ID, got.ID, "cycling back from the first tab wraps to the last")

	s.cycleTab(1)
	got, _ = s.store.Selected(false)
	assert.Equal(t, first.ID, got.ID)
}

func TestTrayKeysSelectTab(t *testing.T) {
	s, _ := newTestShell(t, nil)
	first, _ := s.store.Selected(false)
	second := s.store.Open("https://b.test", "B", false)
	require.NoError(t, s.store.Select(first.ID))

	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.Equal(t, stateTray, s.state)

	s.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	s.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateBrowsing, s.state)
	got, _ := s.store.Selected(false)
	assert.Equal(t, second.ID, got.ID)
}

func TestViewRendersChrome(t *testing.T) {
	s, _ := newTestShell(t, nil)
	out := s.View()
	assert.Contains(t, out, "swerve")
	assert.Contains(t, out, "about:blank")
}
