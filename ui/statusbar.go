package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Private  bool
	TabCount int
	// Gesture is the in-flight gesture phase label, empty when idle.
	Gesture string
	Hint    string
}

// StatusBar is the bottom status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarAppNameStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorSurface).
	Bold(true)

var statusBarModeStyle = lipgloss.NewStyle().
	Foreground(ColorLove).
	Background(ColorSurface).
	Bold(true)

var statusBarCountStyle = lipgloss.NewStyle().
	Foreground(ColorFoam).
	Background(ColorSurface)

var statusBarGestureStyle = lipgloss.NewStyle().
	Foreground(ColorRose).
	Background(ColorSurface)

var statusBarHintStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Background(ColorSurface)

const statusBarSep = " │ "

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	parts := make([]string, 0, 5)
	parts = append(parts, statusBarAppNameStyle.Render("swerve"))

	if s.data.Private {
		parts = append(parts, statusBarModeStyle.Render("private"))
	}

	parts = append(parts, statusBarCountStyle.Render(fmt.Sprintf("%d tabs", s.data.TabCount)))

	if s.data.Gesture != "" {
		parts = append(parts, statusBarGestureStyle.Render(s.data.Gesture))
	}

	if s.data.Hint != "" {
		parts = append(parts, statusBarHintStyle.Render(s.data.Hint))
	}

	line := parts[0]
	for _, p := range parts[1:] {
		line += statusBarSepStyle.Render(statusBarSep) + p
	}
	return statusBarStyle.Width(s.width).Render(line)
}
