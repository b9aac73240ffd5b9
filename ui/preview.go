package ui

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/kastheco/swerve/tabs"
)

// TabLookup resolves a tab id to its metadata for thumbnail rendering.
type TabLookup func(id string) (tabs.Tab, bool)

// PreviewPane is the stand-in surface for the tab a gesture is heading to.
// It implements gesture.PreviewSurface; the gesture core stages it just off
// the window edge, slides it with the drag, and fades it after a completed
// swipe. Its width is the window width plus the staging gap, so VisibleWidth
// reads how much of it crossed into the window.
type PreviewPane struct {
	width   int
	height  int
	offset  float64
	opacity float64
	visible bool
	tab     tabs.Tab
	hasTab  bool
	lookup  TabLookup
}

func NewPreviewPane(lookup TabLookup) *PreviewPane {
	return &PreviewPane{lookup: lookup, opacity: 1}
}

// SetSize sets the surface size. width should already include the staging
// gap beyond the window edge.
func (p *PreviewPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Visible reports whether the surface should be composed at all.
func (p *PreviewPane) Visible() bool { return p.visible }

// LoadThumbnail implements gesture.PreviewSurface.
func (p *PreviewPane) LoadThumbnail(tabID string, private bool) {
	p.tab, p.hasTab = p.lookup(tabID)
}

// Offset implements gesture.PreviewSurface.
func (p *PreviewPane) Offset() float64 { return p.offset }

// SetOffset implements gesture.PreviewSurface.
func (p *PreviewPane) SetOffset(offset float64) { p.offset = offset }

// Opacity implements gesture.PreviewSurface.
func (p *PreviewPane) Opacity() float64 { return p.opacity }

// SetOpacity implements gesture.PreviewSurface.
func (p *PreviewPane) SetOpacity(opacity float64) { p.opacity = opacity }

// SetVisible implements gesture.PreviewSurface.
func (p *PreviewPane) SetVisible(visible bool) { p.visible = visible }

// VisibleWidth implements gesture.PreviewSurface.
func (p *PreviewPane) VisibleWidth() float64 {
	off := p.offset
	if off < 0 {
		off = -off
	}
	w := float64(p.width) - off
	if w < 0 {
		return 0
	}
	if w > float64(p.width) {
		return float64(p.width)
	}
	return w
}

// Lines renders the thumbnail as plain-text rows for the slide compositor.
func (p *PreviewPane) Lines() []string {
	if p.width <= 0 || p.height <= 0 {
		return nil
	}
	if !p.hasTab {
		return centeredLines(p.width, p.height, "new tab")
	}
	title := truncate.StringWithTail(p.tab.Title, uint(max(1, p.width-4)), "…")
	url := truncate.StringWithTail(p.tab.URL, uint(max(1, p.width-4)), "…")

	lines := make([]string, p.height)
	mid := p.height / 2
	if mid-1 >= 0 {
		lines[mid-1] = "  " + title
	}
	lines[mid] = "  " + strings.Repeat("┄", max(1, p.width-4))
	if mid+1 < p.height {
		lines[mid+1] = "  " + url
	}
	return lines
}
