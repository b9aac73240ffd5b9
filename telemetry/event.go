package telemetry

import "time"

// EventKind identifies the type of telemetry event.
type EventKind string

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Gesture lifecycle events.
const (
	EventGestureArmed    EventKind = "gesture_armed"
	EventGestureRejected EventKind = "gesture_rejected"
	EventGestureCanceled EventKind = "gesture_canceled"
)

// Navigation outcome events.
const (
	EventToolbarSwipe EventKind = "toolbar_tab_swipe"
	EventTrayOpened   EventKind = "tray_opened"
	EventNewTabOpened EventKind = "new_tab_opened"
)

// Event is a single telemetry entry.
type Event struct {
	ID        int64
	Kind      EventKind
	Timestamp time.Time
	// Direction is the gesture direction, when the event has one.
	Direction string
	// TabID is the target tab, when the event has one.
	TabID string
	// Private marks events that happened in private browsing mode.
	Private bool
	Message string
	// Detail is JSON-encoded extra data.
	Detail string
}
