package gesture

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// State is the lifecycle state of the gesture handler.
type State string

const (
	StateIdle       State = "idle"
	StateArmed      State = "armed"
	StateUpdating   State = "updating"
	StateCompleting State = "completing"
	StateCanceling  State = "canceling"
)

// transition is a lifecycle trigger.
type transition string

const (
	transArm      transition = "arm"
	transUpdate   transition = "update"
	transComplete transition = "complete"
	transCancel   transition = "cancel"
	transSettled  transition = "settled"
)

// transitionTable defines all valid state transitions.
// Key: current state → trigger → new state.
var transitionTable = map[State]map[transition]State{
	StateIdle: {
		transArm: StateArmed,
	},
	StateArmed: {
		transUpdate:   StateUpdating,
		transComplete: StateCompleting,
		transCancel:   StateCanceling,
	},
	StateUpdating: {
		transUpdate:   StateUpdating,
		transComplete: StateCompleting,
		transCancel:   StateCanceling,
	},
	StateCompleting: {
		transSettled: StateIdle,
	},
	StateCanceling: {
		transSettled: StateIdle,
	},
}

// applyTransition returns the new state for the given current state and
// trigger. An invalid transition is a caller precondition failure.
func applyTransition(current State, tr transition) (State, error) {
	triggers, ok := transitionTable[current]
	if !ok {
		return "", fmt.Errorf("no transitions defined for state %q", current)
	}
	next, ok := triggers[tr]
	if !ok {
		return "", fmt.Errorf("invalid transition: %q + %q", current, tr)
	}
	return next, nil
}

// easeInOutCubic is the settle animation curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// settleAnim slides the content and preview surfaces from their live offsets
// to fixed targets over a fixed duration, then runs its continuation once.
// It is stepped by the host's animation ticks; starting one returns
// immediately.
type settleAnim struct {
	duration time.Duration
	elapsed  time.Duration

	contentFrom, contentTo float64
	previewFrom, previewTo float64
	movePreview            bool

	// then runs exactly once when the animation lands on its targets.
	then func()
}

// step advances the animation by dt and applies the eased offsets.
// It reports whether the animation finished on this step.
func (a *settleAnim) step(dt time.Duration, content ContentSurface, preview PreviewSurface) bool {
	a.elapsed += dt
	t := 1.0
	if a.duration > 0 {
		t = clampf(float64(a.elapsed)/float64(a.duration), 0, 1)
	}
	e := easeInOutCubic(t)

	content.SetOffset(lerp(a.contentFrom, a.contentTo, e))
	if a.movePreview {
		preview.SetOffset(lerp(a.previewFrom, a.previewTo, e))
	}

	if t < 1 {
		return false
	}
	if a.then != nil {
		then := a.then
		a.then = nil
		then()
	}
	return true
}

// fadeAnim drives the preview opacity to zero on a spring, then runs its
// continuation once.
type fadeAnim struct {
	spring   harmonica.Spring
	opacity  float64
	velocity float64

	then func()
}

func newFadeAnim(fps int, frequency, damping, from float64) *fadeAnim {
	return &fadeAnim{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		opacity: from,
	}
}

// step advances the fade and applies the opacity. Reports completion.
func (a *fadeAnim) step(preview PreviewSurface) bool {
	a.opacity, a.velocity = a.spring.Update(a.opacity, a.velocity, 0)
	if a.opacity < 0.01 && math.Abs(a.velocity) < 0.01 {
		preview.SetOpacity(0)
		if a.then != nil {
			then := a.then
			a.then = nil
			then()
		}
		return true
	}
	preview.SetOpacity(a.opacity)
	return false
}
