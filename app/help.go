package app

import (
	"github.com/charmbracelet/glamour"

	"github.com/kastheco/swerve/log"
)

const helpMarkdown = `# swerve

A toolbar-gesture browser shell. Drag the toolbar sideways to slide to the
neighboring tab, or drag it vertically away from its edge to open the tab
tray. A sideways drag past the last tab rubber-bands, and releasing it past
the stretch opens a fresh tab.

## Keys

| Key | Action |
| --- | ------ |
| n | new tab |
| w | close tab |
| ←/h →/l | previous / next tab |
| p | toggle private mode |
| t | open tab tray |
| / | edit address |
| y | copy url |
| ? | help |
| q | quit |

## Gestures

Drag starts on the toolbar row. The drag direction is locked from the first
move: sideways swipes change tabs, vertical swipes pull the tab tray open.
Release past a quarter of the screen, or flick, to commit.
`

// renderHelp glamour-renders the help screen once and caches it. Falls back
// to the raw markdown if the renderer fails.
func (s *shell) renderHelp() string {
	if s.helpView != "" {
		return s.helpView
	}

	wordWrap := s.width - 4
	if wordWrap > 100 {
		wordWrap = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		log.WarningLog.Printf("help renderer init failed: %v", err)
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		log.WarningLog.Printf("help render failed: %v", err)
		return helpMarkdown
	}
	s.helpView = out
	return s.helpView
}
