package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/kastheco/swerve/gesture"
	"github.com/kastheco/swerve/tabs"
)

// Tray is the full-screen tab overview with one page per privacy partition.
// Rows are zone-marked so a click selects the tab and leaves the tray.
type Tray struct {
	width  int
	height int
	page   gesture.TrayPage
	rows   []tabs.Tab
	cursor int
}

func NewTray() *Tray {
	return &Tray{}
}

func (t *Tray) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// SetPage switches the visible partition and replaces its rows.
func (t *Tray) SetPage(page gesture.TrayPage, rows []tabs.Tab, selectedID string) {
	t.page = page
	t.rows = rows
	t.cursor = 0
	for i, tab := range rows {
		if tab.ID == selectedID {
			t.cursor = i
			break
		}
	}
}

// Page returns the partition currently shown.
func (t *Tray) Page() gesture.TrayPage { return t.page }

// CursorTab returns the tab under the cursor, if any.
func (t *Tray) CursorTab() (tabs.Tab, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return tabs.Tab{}, false
	}
	return t.rows[t.cursor], true
}

// MoveCursor moves the row cursor by delta, clamped to the row range.
func (t *Tray) MoveCursor(delta int) {
	t.cursor += delta
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
}

var trayHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Bold(true).
	Padding(0, 2)

var trayHeaderDimStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Padding(0, 2)

var trayRowStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Padding(0, 2)

var trayRowCursorStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorOverlay).
	Padding(0, 2)

var trayURLStyle = lipgloss.NewStyle().
	Foreground(ColorPine)

var trayEmptyStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Padding(1, 2)

func (t *Tray) String() string {
	if t.width < 10 || t.height < 3 {
		return ""
	}

	normal := trayHeaderStyle
	private := trayHeaderDimStyle
	if t.page == gesture.PrivateTabs {
		normal, private = private, normal
	}
	header := normal.Render("Tabs") + private.Render("Private")

	var rows []string
	rows = append(rows, header, "")
	if len(t.rows) == 0 {
		rows = append(rows, trayEmptyStyle.Render("no tabs in this page"))
	}
	for i, tab := range t.rows {
		if len(rows) >= t.height {
			break
		}
		style := trayRowStyle
		marker := "  "
		if i == t.cursor {
			style = trayRowCursorStyle
			marker = "▸ "
		}
		title := truncate.StringWithTail(tab.Title, uint(max(1, t.width/2)), "…")
		url := truncate.StringWithTail(tab.URL, uint(max(1, t.width/3)), "…")
		line := style.Render(fmt.Sprintf("%s%s  ", marker, title)) + trayURLStyle.Render(url)
		rows = append(rows, zone.Mark(TrayRowZoneID(i), line))
	}
	for len(rows) < t.height {
		rows = append(rows, "")
	}
	return strings.Join(rows[:t.height], "\n")
}
