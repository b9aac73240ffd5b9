package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/kastheco/swerve/gesture"
)

// ToolbarData holds the contextual information displayed in the toolbar row.
type ToolbarData struct {
	URL     string
	Title   string
	Private bool
	// Editing is true while the address bar has focus. It doubles as the
	// keyboard-visible signal the gesture core checks before arming.
	Editing bool
	// EditView is the rendered address input shown in place of the URL
	// while Editing.
	EditView string
	TabCount int
}

// Toolbar is the single-row address bar the swipe gesture starts on.
type Toolbar struct {
	width int
	data  ToolbarData
}

func NewToolbar() *Toolbar {
	return &Toolbar{}
}

func (t *Toolbar) SetSize(width int) {
	t.width = width
}

func (t *Toolbar) SetData(data ToolbarData) {
	t.data = data
}

// HitRect returns the toolbar's hit rectangle given the window row it was
// composed at. The gesture core expands it for bottom-edge insets itself.
func (t *Toolbar) HitRect(rowY int) gesture.Rect {
	return gesture.Rect{X: 0, Y: float64(rowY), Width: float64(t.width), Height: 1}
}

// FieldWidth is the space the address field occupies after the mode glyph
// and tab count. The shell sizes its address input to match.
func (t *Toolbar) FieldWidth() int {
	w := t.width - 8
	if w < 1 {
		w = 1
	}
	return w
}

var toolbarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var toolbarURLStyle = lipgloss.NewStyle().
	Foreground(ColorPine).
	Background(ColorSurface)

var toolbarEditStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorOverlay)

var toolbarPrivateStyle = lipgloss.NewStyle().
	Foreground(ColorLove).
	Background(ColorSurface).
	Bold(true)

var toolbarCountStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Background(ColorSurface)

func (t *Toolbar) String() string {
	if t.width < 10 {
		return ""
	}

	mode := "  "
	if t.data.Private {
		mode = toolbarPrivateStyle.Render("◦ ")
	}

	count := toolbarCountStyle.Render(tabCountGlyph(t.data.TabCount))

	// Address field takes whatever width the fixed parts leave over.
	fieldWidth := t.FieldWidth()

	var field string
	if t.data.Editing {
		text := truncate.StringWithTail(t.data.EditView, uint(fieldWidth), "…")
		field = toolbarEditStyle.Render(padRight(text, fieldWidth))
	} else {
		shown := t.data.URL
		if shown == "" {
			shown = t.data.Title
		}
		field = toolbarURLStyle.Render(padRight(truncate.StringWithTail(shown, uint(fieldWidth), "…"), fieldWidth))
	}

	row := toolbarStyle.Width(t.width).Render(mode + field + " " + count)
	return zone.Mark(ZoneToolbar, row)
}

func tabCountGlyph(n int) string {
	if n > 9 {
		return "⊞+"
	}
	return "⊞" + string(rune('0'+n))
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
