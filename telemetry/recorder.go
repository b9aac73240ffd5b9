package telemetry

import "time"

// QueryFilter specifies criteria for querying telemetry events.
type QueryFilter struct {
	Kinds  []EventKind
	TabID  string
	Limit  int
	Before time.Time
	After  time.Time
}

// Recorder is the interface for emitting and querying telemetry events.
type Recorder interface {
	Emit(event Event)
	Query(filter QueryFilter) ([]Event, error)
	Close() error
}

// EventOption is a functional option for configuring optional Event fields.
type EventOption func(*Event)

// WithDirection sets the gesture direction on the event.
func WithDirection(direction string) EventOption {
	return func(e *Event) { e.Direction = direction }
}

// WithTab sets the target tab on the event.
func WithTab(tabID string) EventOption {
	return func(e *Event) { e.TabID = tabID }
}

// WithPrivate marks the event as private-mode.
func WithPrivate(private bool) EventOption {
	return func(e *Event) { e.Private = private }
}

// WithDetail sets the Detail field on the event (JSON-encoded extra data).
func WithDetail(detail string) EventOption {
	return func(e *Event) { e.Detail = detail }
}

// NewEvent builds an event of the given kind with options applied.
func NewEvent(kind EventKind, message string, opts ...EventOption) Event {
	e := Event{Kind: kind, Message: message}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// nopRecorder is a no-op Recorder used when telemetry is disabled.
type nopRecorder struct{}

// NopRecorder returns a Recorder that discards all events.
func NopRecorder() Recorder {
	return &nopRecorder{}
}

func (n *nopRecorder) Emit(_ Event) {}

func (n *nopRecorder) Query(_ QueryFilter) ([]Event, error) {
	return nil, nil
}

func (n *nopRecorder) Close() error {
	return nil
}
