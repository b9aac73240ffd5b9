package gesture

import "math"

// classifyDirection picks the direction from the dominant axis of the first
// displacement sample. Horizontal wins only on a strict majority; ties
// resolve to vertical.
func classifyDirection(start, next Point) Direction {
	dx := next.X - start.X
	dy := next.Y - start.Y
	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			return RightToLeft
		}
		return LeftToRight
	}
	if dy < 0 {
		return BottomToTop
	}
	return TopToBottom
}

// shouldArm decides whether the first two samples start a gesture this core
// consumes. The start point must sit inside the toolbar hit-rectangle
// (grown upward by the bottom system-gesture inset when the toolbar is
// bottom-anchored), the on-screen keyboard must be hidden, and the
// displacement must clear the slop threshold while clearly dominating the
// other axis.
func shouldArm(start, next Point, env Environment, slop float64) (Direction, bool) {
	dir := classifyDirection(start, next)

	if env.KeyboardVisible {
		return dir, false
	}

	hit := env.ToolbarRect
	if env.ToolbarPosition == ToolbarBottom {
		hit = hit.ExpandedUp(env.BottomInset)
	}
	if !hit.Contains(start) {
		return dir, false
	}

	dx := next.X - start.X
	dy := next.Y - start.Y
	if dir.Horizontal() {
		return dir, math.Abs(dx) > slop && math.Abs(dy) < math.Abs(dx)
	}
	return dir, math.Abs(dy) > slop && math.Abs(dx) < math.Abs(dy)
}

// isReverseFling reports whether the release velocity is a fling whose sign
// opposes the gesture direction. Only horizontal directions can be vetoed
// this way; vertical releases are always direction-compatible.
func isReverseFling(dir Direction, velocity, minFling float64) bool {
	if math.Abs(velocity) < minFling {
		return false
	}
	switch dir {
	case RightToLeft:
		return velocity > 0
	case LeftToRight:
		return velocity < 0
	}
	return false
}

// isComplete decides whether the gesture finished: not a reverse fling, and
// either the drag progressed past the finish threshold or the release was a
// fling in the gesture direction.
func isComplete(dir Direction, velocity, progress float64, t Tuning) bool {
	if isReverseFling(dir, velocity, t.MinFlingVelocity) {
		return false
	}
	return progress >= t.FinishPercent || math.Abs(velocity) >= t.MinFlingVelocity
}
