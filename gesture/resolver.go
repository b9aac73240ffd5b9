package gesture

// Resolve computes what a gesture in the given direction targets against the
// current tab ordering. Vertical directions always target the tray. For
// horizontal directions the index arithmetic flips with the locale layout
// direction while the on-screen motion does not: a right-to-left swipe means
// "next visual tab", which is index+1 under LTR and index-1 under RTL;
// left-to-right is the mirror. A missing selection, a selection not present
// in the ordering, or an index outside [0, count) all resolve to None.
//
// The result is a snapshot: it may differ between calls when the underlying
// tab list changes, but never within one call.
func Resolve(dir Direction, tabs TabsView, private, rtl bool) Destination {
	if !dir.Horizontal() {
		return Destination{Kind: DestinationTray}
	}

	current, ok := tabs.SelectedID(private)
	if !ok {
		return Destination{Kind: DestinationNone}
	}

	ids := tabs.OrderedIDs(private)
	currentIndex := -1
	for i, id := range ids {
		if id == current {
			currentIndex = i
			break
		}
	}
	if currentIndex < 0 {
		return Destination{Kind: DestinationNone}
	}

	target := currentIndex + indexDelta(dir, rtl)
	if target < 0 || target >= len(ids) {
		return Destination{Kind: DestinationNone}
	}
	return Destination{Kind: DestinationTab, TabID: ids[target], Private: private}
}

// indexDelta is the mirror table: visual swipe direction maps to previous/
// next consistently regardless of script direction.
func indexDelta(dir Direction, rtl bool) int {
	if dir == RightToLeft {
		if rtl {
			return -1
		}
		return 1
	}
	// LeftToRight
	if rtl {
		return 1
	}
	return -1
}

// edgeOppositeReading reports whether dir swipes toward the edge opposite
// the reading direction: right-to-left under LTR, left-to-right under RTL.
// This is the branch that opens a fresh tab when no neighbor exists.
func edgeOppositeReading(dir Direction, rtl bool) bool {
	if rtl {
		return dir == LeftToRight
	}
	return dir == RightToLeft
}
