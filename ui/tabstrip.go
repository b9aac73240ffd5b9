package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/kastheco/swerve/tabs"
)

const tabCellWidth = 16

// TabStrip is the one-row list of open tabs shown next to the toolbar.
// Clicking a cell selects that tab; the cells are zone-marked for hit
// detection in the shell's mouse handler.
type TabStrip struct {
	width    int
	tabs     []tabs.Tab
	selected string
}

func NewTabStrip() *TabStrip {
	return &TabStrip{}
}

func (s *TabStrip) SetSize(width int) {
	s.width = width
}

// SetTabs replaces the visible partition's tabs and the selected id.
func (s *TabStrip) SetTabs(list []tabs.Tab, selected string) {
	s.tabs = list
	s.selected = selected
}

var tabCellStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Background(ColorBase).
	Padding(0, 1)

var tabCellSelectedStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorOverlay).
	Bold(true).
	Padding(0, 1)

var tabCellPrivateStyle = lipgloss.NewStyle().
	Foreground(ColorLove).
	Background(ColorBase).
	Padding(0, 1)

var tabStripFillStyle = lipgloss.NewStyle().
	Background(ColorBase)

func (s *TabStrip) String() string {
	if s.width < tabCellWidth {
		return ""
	}

	var cells []string
	used := 0
	for i, tab := range s.tabs {
		if used+tabCellWidth > s.width {
			break
		}
		label := tab.Title
		if label == "" {
			label = tab.URL
		}
		label = truncate.StringWithTail(label, tabCellWidth-2, "…")

		style := tabCellStyle
		switch {
		case tab.ID == s.selected:
			style = tabCellSelectedStyle
		case tab.Private:
			style = tabCellPrivateStyle
		}
		cell := style.Width(tabCellWidth).Render(label)
		cells = append(cells, zone.Mark(TabZoneID(i), cell))
		used += tabCellWidth
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if gap := s.width - used; gap > 0 {
		row += tabStripFillStyle.Render(strings.Repeat(" ", gap))
	}
	return zone.Mark(ZoneTabStrip, row)
}
