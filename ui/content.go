package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kastheco/swerve/tabs"
)

// ContentPane renders the selected tab's page area and carries the
// horizontal slide offset the gesture core drives through
// gesture.ContentSurface.
type ContentPane struct {
	width  int
	height int
	offset float64
	tab    tabs.Tab
	hasTab bool
}

func NewContentPane() *ContentPane {
	return &ContentPane{}
}

func (c *ContentPane) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetTab points the pane at the tab to render. ok false clears it.
func (c *ContentPane) SetTab(tab tabs.Tab, ok bool) {
	c.tab = tab
	c.hasTab = ok
}

// Offset implements gesture.ContentSurface.
func (c *ContentPane) Offset() float64 { return c.offset }

// SetOffset implements gesture.ContentSurface.
func (c *ContentPane) SetOffset(offset float64) { c.offset = offset }

// Width implements gesture.ContentSurface.
func (c *ContentPane) Width() float64 { return float64(c.width) }

// Lines renders the page as plain-text rows for the slide compositor.
// Styling happens in the compositor so the rows can be clipped per cell.
func (c *ContentPane) Lines() []string {
	if c.width <= 0 || c.height <= 0 {
		return nil
	}
	if !c.hasTab {
		return centeredLines(c.width, c.height, "no open tabs")
	}
	return pageLines(c.width, c.height, c.tab)
}

// pageLines builds the placeholder page body shown for a tab. The shell has
// no web engine, so the page is the tab's metadata laid out like a document.
func pageLines(width, height int, tab tabs.Tab) []string {
	lines := []string{
		"",
		"  " + tab.Title,
		"  " + strings.Repeat("─", max(1, min(width-4, lipgloss.Width(tab.Title)+2))),
		"  " + tab.URL,
		"",
	}
	body := fmt.Sprintf("Loaded %s. Swipe the toolbar sideways to change tabs, or swipe it vertically to open the tab tray.", tab.URL)
	if tab.Private {
		body = "Private tab. " + body
	}
	for _, l := range strings.Split(wordwrap.String(body, max(1, width-4)), "\n") {
		lines = append(lines, "  "+l)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

func centeredLines(width, height int, msg string) []string {
	lines := make([]string, height)
	mid := height / 2
	pad := (width - lipgloss.Width(msg)) / 2
	if pad < 0 {
		pad = 0
	}
	lines[mid] = strings.Repeat(" ", pad) + msg
	return lines
}
