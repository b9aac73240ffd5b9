package gesture

import (
	"math"
	"time"

	"github.com/kastheco/swerve/log"
)

// fadeFPS is the frame rate the preview fade spring is tuned for. The host
// is expected to step animations at roughly this rate.
const fadeFPS = 60

// Config wires a Handler to its collaborators.
type Config struct {
	Tabs      TabsView
	Content   ContentSurface
	Preview   PreviewSurface
	Navigator Navigator
	Env       EnvironmentSource
	Telemetry Telemetry
	Tuning    Tuning
}

// Handler is the gesture core. All methods must be called from the single
// UI/animation goroutine; there is no internal locking because there is no
// parallelism, only sequencing.
type Handler struct {
	tabs      TabsView
	content   ContentSurface
	preview   PreviewSurface
	nav       Navigator
	envs      EnvironmentSource
	telemetry Telemetry
	tuning    Tuning

	state  State
	sess   *session
	settle *settleAnim
	fade   *fadeAnim
}

// NewHandler creates a gesture handler in the idle state.
func NewHandler(cfg Config) *Handler {
	if cfg.Telemetry == nil {
		cfg.Telemetry = NopTelemetry()
	}
	return &Handler{
		tabs:      cfg.Tabs,
		content:   cfg.Content,
		preview:   cfg.Preview,
		nav:       cfg.Navigator,
		envs:      cfg.Env,
		telemetry: cfg.Telemetry,
		tuning:    cfg.Tuning,
		state:     StateIdle,
	}
}

// State returns the current lifecycle state.
func (h *Handler) State() State {
	return h.state
}

// Direction returns the armed gesture's direction. Valid only while a
// session is active.
func (h *Handler) Direction() (Direction, bool) {
	if h.sess == nil {
		return 0, false
	}
	return h.sess.direction, true
}

// OnStart receives the first two samples of a drag and reports whether this
// core consumes the gesture. A new gesture is only accepted after the
// previous session fully resolved. On acceptance the environment is frozen
// for the session and, when the gesture targets a specific tab, the preview
// surface is pre-staged outside the window edge.
func (h *Handler) OnStart(start, next Point) bool {
	if h.state != StateIdle {
		// Previous session still settling; precondition of the raw-event
		// collaborator, not handled here.
		return false
	}

	env := h.envs.Environment()
	dir, ok := shouldArm(start, next, env, h.tuning.Slop)
	if !ok {
		return false
	}

	next2, err := applyTransition(h.state, transArm)
	if err != nil {
		log.ErrorLog.Printf("gesture arm rejected: %v", err)
		return false
	}
	h.state = next2
	h.sess = &session{direction: dir, env: env, start: start}

	if dest := h.resolve(); dest.Kind == DestinationTab {
		h.stagePreview(dest)
	}
	return true
}

// OnUpdate receives one direction-agnostic delta sample and moves the live
// surfaces. The destination is re-resolved on every sample, so a tab-list
// mutation mid-drag retargets the gesture.
func (h *Handler) OnUpdate(dx, dy float64) {
	if h.sess == nil || (h.state != StateArmed && h.state != StateUpdating) {
		return
	}
	next, err := applyTransition(h.state, transUpdate)
	if err != nil {
		log.ErrorLog.Printf("gesture update rejected: %v", err)
		return
	}
	h.state = next
	h.applyUpdate(h.resolve(), dx, dy)
}

// OnEnd receives the release velocities, re-resolves the destination once
// more, and routes to the matching settle branch. Terminal side effects run
// only after their animation completes, never here.
func (h *Handler) OnEnd(velocityX, velocityY float64) {
	if h.sess == nil || (h.state != StateArmed && h.state != StateUpdating) {
		return
	}

	dest := h.resolve()
	velocity := velocityX
	if !h.sess.direction.Horizontal() {
		velocity = velocityY
	}
	complete := isComplete(h.sess.direction, velocity, h.progress(dest), h.tuning)
	fling := math.Abs(velocity) >= h.tuning.MinFlingVelocity

	switch {
	case dest.Kind == DestinationTab && complete:
		h.beginComplete(dest)
	case dest.Kind == DestinationTray && h.trayEdgeMatches():
		h.finishTray()
	case dest.Kind == DestinationNone && complete &&
		edgeOppositeReading(h.sess.direction, h.sess.env.RTL):
		h.finishNewTab()
	default:
		h.beginCancel(fling)
	}
}

// Animating reports whether a settle or fade animation is in flight. The
// host should keep stepping while this is true.
func (h *Handler) Animating() bool {
	return h.settle != nil || h.fade != nil
}

// Step advances the active animation by dt. Completion continuations run
// in order on the caller's goroutine: off-screen slide, then the terminal
// navigation effect, then the preview fade, then hide and telemetry.
func (h *Handler) Step(dt time.Duration) {
	if h.settle != nil {
		if h.settle.step(dt, h.content, h.preview) {
			h.settle = nil
		}
		return
	}
	if h.fade != nil {
		if h.fade.step(h.preview) {
			h.fade = nil
		}
	}
}

// resolve computes the destination for the active session.
func (h *Handler) resolve() Destination {
	return Resolve(h.sess.direction, h.tabs, h.sess.env.PrivateMode, h.sess.env.RTL)
}

// trayEdgeMatches reports whether a vertical gesture pulls away from the
// toolbar's physical edge: top-to-bottom needs a top toolbar, bottom-to-top
// a bottom toolbar.
func (h *Handler) trayEdgeMatches() bool {
	switch h.sess.direction {
	case TopToBottom:
		return h.sess.env.ToolbarPosition == ToolbarTop
	case BottomToTop:
		return h.sess.env.ToolbarPosition == ToolbarBottom
	}
	return false
}

// beginComplete animates the content fully off-screen and the preview fully
// on-screen, then selects the target tab, fades the preview out, hides it
// and emits the single swipe signal.
func (h *Handler) beginComplete(dest Destination) {
	h.mustTransition(transComplete)

	limit := travelLimit(h.sess.env, h.tuning)
	contentTo := -limit
	if h.sess.direction == LeftToRight {
		contentTo = limit
	}

	h.settle = &settleAnim{
		duration:    h.tuning.CompleteDuration,
		contentFrom: h.content.Offset(),
		contentTo:   contentTo,
		previewFrom: h.preview.Offset(),
		previewTo:   0,
		movePreview: h.sess.staged,
		then: func() {
			h.nav.SelectTab(dest.TabID)
			h.content.SetOffset(0)
			h.fade = newFadeAnim(fadeFPS, h.tuning.FadeFrequency, h.tuning.FadeDamping, h.preview.Opacity())
			h.fade.then = func() {
				h.preview.SetVisible(false)
				h.preview.SetOffset(0)
				h.telemetry.ToolbarSwipe(dest)
				h.finishSession()
			}
		},
	}
}

// beginCancel animates both surfaces back to rest, faster when the release
// had fling-level velocity, then hides the preview.
func (h *Handler) beginCancel(fling bool) {
	h.mustTransition(transCancel)

	duration := h.tuning.CancelDuration
	if fling {
		duration = h.tuning.FlingCancelDuration
	}

	previewTo := travelLimit(h.sess.env, h.tuning)
	if h.sess.direction == LeftToRight {
		previewTo = -previewTo
	}

	h.settle = &settleAnim{
		duration:    duration,
		contentFrom: h.content.Offset(),
		contentTo:   0,
		previewFrom: h.preview.Offset(),
		previewTo:   previewTo,
		movePreview: h.sess.staged,
		then: func() {
			h.preview.SetVisible(false)
			h.finishSession()
		},
	}
}

// finishTray navigates to the tab tray page for the session's browsing mode.
// The tray reveal is a full-screen transition owned by the navigator; no
// surface animation runs here.
func (h *Handler) finishTray() {
	h.mustTransition(transComplete)

	page := NormalTabs
	if h.sess.env.PrivateMode {
		page = PrivateTabs
	}
	h.resetSurfaces()
	h.nav.NavigateToTray(page)
	h.finishSession()
}

// finishNewTab opens a fresh blank tab with address-bar focus instead of
// animating a tab change.
func (h *Handler) finishNewTab() {
	h.mustTransition(transComplete)

	h.resetSurfaces()
	h.nav.NavigateToNewTab(true)
	h.finishSession()
}

func (h *Handler) resetSurfaces() {
	h.content.SetOffset(0)
	if h.sess.staged {
		h.preview.SetVisible(false)
		h.preview.SetOffset(0)
	}
}

// finishSession returns the handler to idle and drops the session.
func (h *Handler) finishSession() {
	h.mustTransition(transSettled)
	h.sess = nil
}

func (h *Handler) mustTransition(tr transition) {
	next, err := applyTransition(h.state, tr)
	if err != nil {
		// Invariant violation; log loudly and force idle so the next
		// gesture is not wedged.
		log.ErrorLog.Printf("gesture state machine: %v", err)
		h.state = StateIdle
		return
	}
	h.state = next
}
