package viewport

// Range-membership queries used by the mutation-diffing layer to decide
// whether a structural change could affect what is on screen. They read
// the held snapshot and the pending flag, nothing else.
//
// All queries answer true while "forced": an unmeasured viewport or an
// already-pending data change conservatively counts every mutation as
// in range so callers never under-notify.

// InsertInVisibleRange reports whether inserting size items at position
// intersects the visible range. The upper bound is widened to
// firstVisible+viewportCount-1 when that exceeds the held lastVisible,
// covering items that become visible as the insertion shifts content.
// viewportCount is the estimated number of items per viewport, or
// UnknownViewportCount to force a conservative answer.
func (t *Tracker) InsertInVisibleRange(position, size, viewportCount int) bool {
	if t.forced() || viewportCount == UnknownViewportCount {
		return true
	}

	last := t.current.LastVisible
	if widened := t.current.FirstVisible + viewportCount - 1; widened > last {
		last = widened
	}

	return t.overlaps(position, size, t.current.FirstVisible, last)
}

// UpdateInVisibleRange reports whether updating size items at position
// intersects the visible range.
func (t *Tracker) UpdateInVisibleRange(position, size int) bool {
	if t.forced() {
		return true
	}
	return t.overlaps(position, size, t.current.FirstVisible, t.current.LastVisible)
}

// MoveInVisibleRange reports whether moving an item between fromPosition
// and toPosition intersects the visible range. Both endpoints test
// against [firstVisible, firstVisible+viewportCount-1]; the held
// lastVisible is not consulted.
func (t *Tracker) MoveInVisibleRange(fromPosition, toPosition, viewportCount int) bool {
	if t.forced() || viewportCount == UnknownViewportCount {
		return true
	}

	first := t.current.FirstVisible
	last := first + viewportCount - 1

	newPositionInRange := toPosition >= first && toPosition <= last
	oldPositionInRange := fromPosition >= first && fromPosition <= last

	return newPositionInRange || oldPositionInRange
}

// RemoveInVisibleRange reports whether removing size items at position
// intersects the visible range. Semantics match UpdateInVisibleRange.
func (t *Tracker) RemoveInVisibleRange(position, size int) bool {
	if t.forced() {
		return true
	}
	return t.overlaps(position, size, t.current.FirstVisible, t.current.LastVisible)
}

// overlaps reports whether any index in [position, position+size)
// falls within [first, last].
func (t *Tracker) overlaps(position, size, first, last int) bool {
	for index := position; index < position+size; index++ {
		if first <= index && index <= last {
			return true
		}
	}
	return false
}

// forced reports whether range queries must answer true unconditionally:
// the viewport is unmeasured or a data change is already pending.
func (t *Tracker) forced() bool {
	return t.current.FirstVisible < 0 ||
		t.current.LastVisible < 0 ||
		t.pendingDataChange
}
