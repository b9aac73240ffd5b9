package app

import (
	"time"

	"github.com/kastheco/swerve/gesture"
)

// velocityWindow bounds how far back release velocity looks. Older samples
// describe an earlier phase of the drag, not the release speed.
const velocityWindow = 120 * time.Millisecond

type dragSample struct {
	at  time.Time
	pos gesture.Point
}

// dragTracker accumulates pointer samples for one press-to-release drag and
// derives the release velocity from the trailing sample window.
type dragTracker struct {
	// consumed is true once the gesture core accepted the drag.
	consumed bool
	// rejected is true once the core declined; the rest of the drag is
	// ignored until release.
	rejected bool

	samples []dragSample
}

func newDragTracker(start gesture.Point, at time.Time) *dragTracker {
	return &dragTracker{samples: []dragSample{{at: at, pos: start}}}
}

func (t *dragTracker) start() gesture.Point {
	return t.samples[0].pos
}

func (t *dragTracker) current() gesture.Point {
	return t.samples[len(t.samples)-1].pos
}

// update records a motion sample and returns the delta from the previous
// sample as previous-minus-current, the convention the gesture core expects.
func (t *dragTracker) update(pos gesture.Point, at time.Time) (dx, dy float64) {
	prev := t.current()
	t.samples = append(t.samples, dragSample{at: at, pos: pos})
	return prev.X - pos.X, prev.Y - pos.Y
}

// velocity returns the screen-signed release velocity in cells per second,
// measured across the trailing window.
func (t *dragTracker) velocity(now time.Time) (vx, vy float64) {
	last := t.samples[len(t.samples)-1]

	oldest := last
	for i := len(t.samples) - 1; i >= 0; i-- {
		if now.Sub(t.samples[i].at) > velocityWindow {
			break
		}
		oldest = t.samples[i]
	}

	dt := last.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.pos.X - oldest.pos.X) / dt, (last.pos.Y - oldest.pos.Y) / dt
}
