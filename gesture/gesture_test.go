package gesture

import (
	"math"
	"time"
)

// -- test doubles ------------------------------------------------------------

type fakeTabs struct {
	normal   []string
	private  []string
	selected map[bool]string
}

func newFakeTabs(ids ...string) *fakeTabs {
	t := &fakeTabs{normal: ids, selected: map[bool]string{}}
	if len(ids) > 0 {
		t.selected[false] = ids[0]
	}
	return t
}

func (f *fakeTabs) OrderedIDs(private bool) []string {
	if private {
		return f.private
	}
	return f.normal
}

func (f *fakeTabs) SelectedID(private bool) (string, bool) {
	id, ok := f.selected[private]
	return id, ok
}

type fakeContent struct {
	offset float64
	width  float64
}

func (f *fakeContent) Offset() float64          { return f.offset }
func (f *fakeContent) SetOffset(offset float64) { f.offset = offset }
func (f *fakeContent) Width() float64           { return f.width }

type fakePreview struct {
	loadedTab     string
	loadedPrivate bool
	loads         int
	offset        float64
	opacity       float64
	visible       bool
	// width is the full surface width including the off-screen gap.
	width float64
}

func (f *fakePreview) LoadThumbnail(tabID string, private bool) {
	f.loadedTab = tabID
	f.loadedPrivate = private
	f.loads++
}

func (f *fakePreview) Offset() float64            { return f.offset }
func (f *fakePreview) SetOffset(offset float64)   { f.offset = offset }
func (f *fakePreview) Opacity() float64           { return f.opacity }
func (f *fakePreview) SetOpacity(opacity float64) { f.opacity = opacity }
func (f *fakePreview) SetVisible(visible bool)    { f.visible = visible }

func (f *fakePreview) VisibleWidth() float64 {
	v := f.width - math.Abs(f.offset)
	if v < 0 {
		return 0
	}
	if v > f.width {
		return f.width
	}
	return v
}

type fakeNav struct {
	selected []string
	trays    []TrayPage
	newTabs  []bool
}

func (f *fakeNav) SelectTab(tabID string)       { f.selected = append(f.selected, tabID) }
func (f *fakeNav) NavigateToTray(page TrayPage) { f.trays = append(f.trays, page) }
func (f *fakeNav) NavigateToNewTab(focus bool)  { f.newTabs = append(f.newTabs, focus) }

func (f *fakeNav) calls() int {
	return len(f.selected) + len(f.trays) + len(f.newTabs)
}

type fakeEnv struct {
	env Environment
}

func (f *fakeEnv) Environment() Environment { return f.env }

type recordingTelemetry struct {
	swipes []Destination
}

func (r *recordingTelemetry) ToolbarSwipe(dest Destination) {
	r.swipes = append(r.swipes, dest)
}

// -- harness -----------------------------------------------------------------

type harness struct {
	tabs      *fakeTabs
	content   *fakeContent
	preview   *fakePreview
	nav       *fakeNav
	env       *fakeEnv
	telemetry *recordingTelemetry
	handler   *Handler
	tuning    Tuning
}

// newHarness builds a handler against a 1000px window with a 20px preview
// gap and a top toolbar spanning the top 50px.
func newHarness(tabIDs ...string) *harness {
	tuning := DefaultTuning()
	tuning.PreviewOffset = 20

	env := &fakeEnv{env: Environment{
		WindowWidth:     1000,
		ToolbarRect:     Rect{X: 0, Y: 0, Width: 1000, Height: 50},
		ToolbarPosition: ToolbarTop,
	}}

	h := &harness{
		tabs:      newFakeTabs(tabIDs...),
		content:   &fakeContent{width: 1000},
		preview:   &fakePreview{width: 1020},
		nav:       &fakeNav{},
		env:       env,
		telemetry: &recordingTelemetry{},
		tuning:    tuning,
	}
	h.handler = NewHandler(Config{
		Tabs:      h.tabs,
		Content:   h.content,
		Preview:   h.preview,
		Navigator: h.nav,
		Env:       h.env,
		Telemetry: h.telemetry,
		Tuning:    tuning,
	})
	return h
}

// drain steps the handler until all settle/fade animations finish.
func (h *harness) drain() {
	for i := 0; i < 1000 && h.handler.Animating(); i++ {
		h.handler.Step(16 * time.Millisecond)
	}
}
