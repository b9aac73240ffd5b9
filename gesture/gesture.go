// Package gesture interprets a continuous drag that starts on the browser
// toolbar and turns it into one of three navigation outcomes: switch to an
// adjacent tab, open the tab tray, or open a fresh blank tab. It owns the
// preview/content slide animation during the drag and the settle animation
// at release. Raw pointer recognition, tab storage, thumbnail rendering and
// the actual screen transitions are collaborators supplied by the host.
package gesture

import "time"

// Direction is the axis and sign of a gesture, fixed at arm time from the
// dominant axis of the first displacement sample. It is never recomputed
// mid-gesture even if later deltas would imply a different axis.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// Horizontal reports whether the direction runs along the horizontal axis.
func (d Direction) Horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left_to_right"
	case RightToLeft:
		return "right_to_left"
	case TopToBottom:
		return "top_to_bottom"
	case BottomToTop:
		return "bottom_to_top"
	}
	return "unknown"
}

// Point is a position in window coordinates. Y grows downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ExpandedUp grows the rectangle upward (toward smaller Y) by amount.
// Used to compensate for system gesture areas overlapping a bottom toolbar.
func (r Rect) ExpandedUp(amount float64) Rect {
	r.Y -= amount
	r.Height += amount
	return r
}

// DestinationKind discriminates the Destination variant.
type DestinationKind int

const (
	// DestinationNone means the gesture has no valid target (end of tab list).
	DestinationNone DestinationKind = iota
	// DestinationTab targets a specific neighboring tab.
	DestinationTab
	// DestinationTray targets the full-screen tab tray.
	DestinationTray
)

// Destination is what a gesture currently targets. It carries only the
// payload downstream logic needs: the tab identity and its privacy flag.
type Destination struct {
	Kind    DestinationKind
	TabID   string
	Private bool
}

// ToolbarPosition is the physical edge the toolbar is anchored to.
type ToolbarPosition int

const (
	ToolbarTop ToolbarPosition = iota
	ToolbarBottom
)

func (p ToolbarPosition) String() string {
	if p == ToolbarBottom {
		return "bottom"
	}
	return "top"
}

// TrayPage selects which page of the tab tray to open.
type TrayPage int

const (
	NormalTabs TrayPage = iota
	PrivateTabs
)

// Environment is the read-only geometry and host state a gesture runs
// against. It is snapshotted once when the gesture arms so configuration
// changes mid-drag cannot flip the direction mapping.
type Environment struct {
	WindowWidth     float64
	ToolbarRect     Rect
	ToolbarPosition ToolbarPosition
	// BottomInset is the system gesture inset at the bottom screen edge.
	BottomInset     float64
	KeyboardVisible bool
	// RTL is true when the host locale lays text out right-to-left.
	RTL bool
	// PrivateMode is true when the current browsing mode is private.
	PrivateMode bool
}

// EnvironmentSource supplies the environment snapshot at arm time.
type EnvironmentSource interface {
	Environment() Environment
}

// TabsView is a read-only, privacy-partitioned view of the tab collection.
type TabsView interface {
	// OrderedIDs returns tab ids for the partition in visual order.
	OrderedIDs(private bool) []string
	// SelectedID returns the selected tab id for the partition, if any.
	SelectedID(private bool) (string, bool)
}

// ContentSurface is the current page's rendered view, slid out during a drag.
type ContentSurface interface {
	Offset() float64
	SetOffset(offset float64)
	Width() float64
}

// PreviewSurface is the visual stand-in for the tab being swiped to.
type PreviewSurface interface {
	// LoadThumbnail stages the thumbnail for the given tab.
	LoadThumbnail(tabID string, private bool)
	Offset() float64
	SetOffset(offset float64)
	Opacity() float64
	SetOpacity(opacity float64)
	SetVisible(visible bool)
	// VisibleWidth is the width of the surface currently inside the window.
	VisibleWidth() float64
}

// Navigator performs the terminal navigation side effects. Each method is
// invoked at most once per gesture, and only after its animation finished.
type Navigator interface {
	SelectTab(tabID string)
	NavigateToTray(page TrayPage)
	NavigateToNewTab(focusAddressBar bool)
}

// Telemetry receives the completed-swipe analytics signal. It fires exactly
// once per completed tab swipe, after the preview fade finishes.
type Telemetry interface {
	ToolbarSwipe(dest Destination)
}

type nopTelemetry struct{}

func (nopTelemetry) ToolbarSwipe(Destination) {}

// NopTelemetry returns a Telemetry that discards all signals.
func NopTelemetry() Telemetry {
	return nopTelemetry{}
}

// Tuning holds the gesture thresholds and animation timings.
type Tuning struct {
	// Slop is the minimum displacement before a drag arms.
	Slop float64
	// MinFlingVelocity is the release speed that counts as a fling.
	MinFlingVelocity float64
	// FinishPercent is the visible preview fraction that completes a
	// displacement-only gesture.
	FinishPercent float64
	// OverscrollHidePercent bounds the rubber-band travel when the gesture
	// has no target, as a fraction of the content width.
	OverscrollHidePercent float64
	// PreviewOffset is the gap the preview keeps beyond the window edge
	// while staged.
	PreviewOffset float64
	// CompleteDuration is the settle time for a completed tab swipe.
	CompleteDuration time.Duration
	// CancelDuration is the settle time for a plain-release cancel.
	CancelDuration time.Duration
	// FlingCancelDuration is the settle time for a fling-release cancel.
	FlingCancelDuration time.Duration
	// FadeFrequency and FadeDamping shape the preview fade-out spring.
	FadeFrequency float64
	FadeDamping   float64
}

// DefaultTuning returns the stock thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		Slop:                  25,
		MinFlingVelocity:      400,
		FinishPercent:         0.25,
		OverscrollHidePercent: 0.20,
		PreviewOffset:         20,
		CompleteDuration:      250 * time.Millisecond,
		CancelDuration:        200 * time.Millisecond,
		FlingCancelDuration:   150 * time.Millisecond,
		FadeFrequency:         9.0,
		FadeDamping:           1.0,
	}
}

// session is the transient state for one in-progress gesture. Created when
// the gesture arms, destroyed when the settle resolves. At most one exists.
type session struct {
	direction Direction
	env       Environment
	start     Point
	// staged is true once the preview surface was pre-loaded and positioned.
	staged bool
}
