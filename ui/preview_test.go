package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/swerve/tabs"
)

func lookupFor(store map[string]tabs.Tab) TabLookup {
	return func(id string) (tabs.Tab, bool) {
		t, ok := store[id]
		return t, ok
	}
}

func TestPreviewPane_VisibleWidth(t *testing.T) {
	p := NewPreviewPane(lookupFor(nil))
	p.SetSize(102, 10)

	p.SetOffset(102)
	assert.Equal(t, 0.0, p.VisibleWidth(), "fully staged off the right edge")

	p.SetOffset(-102)
	assert.Equal(t, 0.0, p.VisibleWidth(), "fully staged off the left edge")

	p.SetOffset(62)
	assert.Equal(t, 40.0, p.VisibleWidth())

	p.SetOffset(0)
	assert.Equal(t, 102.0, p.VisibleWidth())

	p.SetOffset(-200)
	assert.Equal(t, 0.0, p.VisibleWidth(), "overshoot clamps to zero")
}

func TestPreviewPane_LoadThumbnail(t *testing.T) {
	p := NewPreviewPane(lookupFor(map[string]tabs.Tab{
		"t1": {ID: "t1", URL: "https://example.com", Title: "Example"},
	}))
	p.SetSize(40, 5)

	p.LoadThumbnail("t1", false)
	lines := p.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Example")
	assert.Contains(t, lines[3], "https://example.com")
}

func TestPreviewPane_UnknownTabRendersNewTab(t *testing.T) {
	p := NewPreviewPane(lookupFor(nil))
	p.SetSize(20, 3)

	p.LoadThumbnail("missing", false)
	lines := p.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "new tab")
}

func TestContentPane_Surface(t *testing.T) {
	c := NewContentPane()
	c.SetSize(80, 20)

	assert.Equal(t, 80.0, c.Width())
	c.SetOffset(-16)
	assert.Equal(t, -16.0, c.Offset())
}

func TestContentPane_Lines(t *testing.T) {
	c := NewContentPane()
	c.SetSize(60, 10)
	c.SetTab(tabs.Tab{ID: "t1", URL: "https://example.com", Title: "Example", Private: true}, true)

	lines := c.Lines()
	require.Len(t, lines, 10)
	assert.Contains(t, lines[1], "Example")
	assert.Contains(t, lines[3], "https://example.com")

	joined := ""
	for _, l := range lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "Private tab.")
}

func TestContentPane_NoTabs(t *testing.T) {
	c := NewContentPane()
	c.SetSize(30, 5)
	c.SetTab(tabs.Tab{}, false)

	lines := c.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "no open tabs")
}
