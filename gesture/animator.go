package gesture

import "math"

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// travelLimit is how far the outgoing content may slide: one full window
// width plus the preview gap.
func travelLimit(env Environment, t Tuning) float64 {
	return env.WindowWidth + t.PreviewOffset
}

// stagePreview loads the destination tab's thumbnail and parks the preview
// surface just outside the window edge the direction implies, fully opaque,
// waiting for the drag to bring it into view.
func (h *Handler) stagePreview(dest Destination) {
	limit := travelLimit(h.sess.env, h.tuning)

	h.preview.LoadThumbnail(dest.TabID, dest.Private)
	h.preview.SetOpacity(1)
	if h.sess.direction == RightToLeft {
		h.preview.SetOffset(limit)
	} else {
		h.preview.SetOffset(-limit)
	}
	h.preview.SetVisible(true)
	h.sess.staged = true
}

// applyUpdate moves the live surfaces for one update sample. Offsets step
// incrementally from the current live offset minus the new delta, never from
// the gesture's total displacement, so clamping at one step carries forward
// into the next.
func (h *Handler) applyUpdate(dest Destination, dx, dy float64) {
	// Vertical gestures apply no horizontal motion, and the tray is revealed
	// only as a full-screen transition on completion.
	if !h.sess.direction.Horizontal() || dest.Kind == DestinationTray {
		return
	}

	switch dest.Kind {
	case DestinationTab:
		limit := travelLimit(h.sess.env, h.tuning)
		if h.sess.direction == RightToLeft {
			h.content.SetOffset(clampf(h.content.Offset()-dx, -limit, 0))
			if h.sess.staged {
				h.preview.SetOffset(clampf(h.preview.Offset()-dx, 0, limit))
			}
		} else {
			h.content.SetOffset(clampf(h.content.Offset()-dx, 0, limit))
			if h.sess.staged {
				h.preview.SetOffset(clampf(h.preview.Offset()-dx, -limit, 0))
			}
		}
	case DestinationNone:
		// Rubber-band: bounded travel in the gesture direction only,
		// signalling "end of list" without animating a tab change.
		give := h.tuning.OverscrollHidePercent * h.content.Width()
		if h.sess.direction == RightToLeft {
			h.content.SetOffset(clampf(h.content.Offset()-dx, -give, 0))
		} else {
			h.content.SetOffset(clampf(h.content.Offset()-dx, 0, give))
		}
	}
}

// progress measures how far the gesture has advanced toward completion.
// With a tab destination it is the fraction of the preview surface inside
// the window; with no destination it is the rubber-band stretch, so a fully
// stretched band counts as displacement-complete.
func (h *Handler) progress(dest Destination) float64 {
	switch dest.Kind {
	case DestinationTab:
		limit := travelLimit(h.sess.env, h.tuning)
		if limit <= 0 {
			return 0
		}
		return h.preview.VisibleWidth() / limit
	case DestinationNone:
		give := h.tuning.OverscrollHidePercent * h.content.Width()
		if give <= 0 {
			return 0
		}
		return math.Abs(h.content.Offset()) / give
	}
	return 0
}
