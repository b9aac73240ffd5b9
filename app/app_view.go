package app

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/swerve/gesture"
	"github.com/kastheco/swerve/ui"
)

var contentTextStyle = lipgloss.NewStyle().Foreground(ui.ColorText)

var previewTextStyle = lipgloss.NewStyle().Foreground(ui.ColorFoam)

func (s *shell) View() string {
	if s.width == 0 || s.height == 0 {
		return "loading..."
	}

	switch s.state {
	case stateTray:
		return zone.Scan(s.tray.String())
	case stateHelp:
		return zone.Scan(s.renderHelp())
	}

	tab, hasTab := s.store.Selected(s.privateMode)
	selected, _ := s.store.SelectedID(s.privateMode)

	s.toolbar.SetData(ui.ToolbarData{
		URL:        tab.URL,
		Title:      tab.Title,
		Private:    s.privateMode,
		Editing:  s.state == stateAddress,
		EditView: s.addressInput.View(),
		TabCount: s.store.Count(s.privateMode),
	})
	s.strip.SetTabs(s.store.Tabs(s.privateMode), selected)
	s.content.SetTab(tab, hasTab)
	s.statusBar.SetData(ui.StatusBarData{
		Private:  s.privateMode,
		TabCount: s.store.Count(s.privateMode),
		Gesture:  s.gestureLabel(),
		Hint:     "? help",
	})

	slide := ui.ComposeSlide(s.width, s.contentHeight(),
		s.content.Lines(), roundOffset(s.content.Offset()), contentTextStyle,
		s.preview.Lines(), roundOffset(s.preview.Offset()), previewTextStyle,
		s.preview.Visible(), s.preview.Opacity())

	var rows []string
	if s.cfg.ToolbarAtBottom() {
		rows = []string{s.statusBar.String(), slide, s.strip.String(), s.toolbar.String()}
	} else {
		rows = []string{s.toolbar.String(), s.strip.String(), slide, s.statusBar.String()}
	}
	return zone.Scan(strings.Join(rows, "\n"))
}

// gestureLabel is the status bar's view of the gesture lifecycle. Idle
// renders as empty so the bar stays quiet between gestures.
func (s *shell) gestureLabel() string {
	st := s.handler.State()
	if st == gesture.StateIdle {
		return ""
	}
	return string(st)
}

func roundOffset(offset float64) int {
	return int(math.Round(offset))
}
