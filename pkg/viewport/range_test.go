package viewport

import "testing"

// rangeTracker builds a tracker whose held visible range is [first, last]
// with no pending data change.
func rangeTracker(first, last int) *Tracker {
	layout := &scriptedLayout{first: first, last: last, firstFully: first, lastFully: last, count: 100}
	tracker, _ := newTestTracker(first, last, layout)
	return tracker
}

func TestInsertInVisibleRange(t *testing.T) {
	tests := []struct {
		name          string
		first, last   int
		position      int
		size          int
		viewportCount int
		want          bool
	}{
		{"overlaps held range", 3, 8, 5, 2, 10, true},
		{"far below viewport", 20, 25, 5, 2, 10, false},
		{"unknown viewport count", 20, 25, 5, 2, UnknownViewportCount, true},
		{"inside widened bound only", 3, 4, 10, 1, 10, true},
		{"beyond widened bound", 3, 4, 13, 1, 10, false},
		{"widening never narrows", 3, 20, 15, 1, 5, true},
		{"zero size", 3, 8, 5, 0, 10, false},
		{"starts just past range", 0, 9, 10, 3, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := rangeTracker(tt.first, tt.last)
			got := tracker.InsertInVisibleRange(tt.position, tt.size, tt.viewportCount)
			if got != tt.want {
				t.Errorf("InsertInVisibleRange(%d, %d, %d) with held [%d,%d] = %v, want %v",
					tt.position, tt.size, tt.viewportCount, tt.first, tt.last, got, tt.want)
			}
		})
	}
}

func TestUpdateInVisibleRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		position    int
		size        int
		want        bool
	}{
		{"below held range", 3, 8, 0, 1, false},
		{"at start of held range", 0, 8, 0, 1, true},
		{"straddles range start", 3, 8, 1, 4, true},
		{"straddles range end", 3, 8, 8, 5, true},
		{"past held range", 3, 8, 9, 3, false},
		{"zero size", 3, 8, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := rangeTracker(tt.first, tt.last)
			got := tracker.UpdateInVisibleRange(tt.position, tt.size)
			if got != tt.want {
				t.Errorf("UpdateInVisibleRange(%d, %d) with held [%d,%d] = %v, want %v",
					tt.position, tt.size, tt.first, tt.last, got, tt.want)
			}
		})
	}
}

func TestRemoveInVisibleRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		position    int
		size        int
		want        bool
	}{
		{"below held range", 3, 8, 0, 1, false},
		{"overlaps held range", 3, 8, 7, 4, true},
		{"past held range", 3, 8, 20, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := rangeTracker(tt.first, tt.last)
			got := tracker.RemoveInVisibleRange(tt.position, tt.size)
			if got != tt.want {
				t.Errorf("RemoveInVisibleRange(%d, %d) with held [%d,%d] = %v, want %v",
					tt.position, tt.size, tt.first, tt.last, got, tt.want)
			}
		})
	}
}

func TestMoveInVisibleRange(t *testing.T) {
	tests := []struct {
		name          string
		first, last   int
		from, to      int
		viewportCount int
		want          bool
	}{
		{"from inside viewport window", 3, 8, 4, 20, 5, true},
		{"to inside viewport window", 3, 8, 20, 5, 5, true},
		{"both outside viewport window", 3, 8, 10, 20, 5, false},
		{"unknown viewport count", 3, 8, 10, 20, UnknownViewportCount, true},
		{"window edge inclusive", 3, 8, 7, 20, 5, true},
		{"just past window edge", 3, 8, 8, 20, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := rangeTracker(tt.first, tt.last)
			got := tracker.MoveInVisibleRange(tt.from, tt.to, tt.viewportCount)
			if got != tt.want {
				t.Errorf("MoveInVisibleRange(%d, %d, %d) with held [%d,%d] = %v, want %v",
					tt.from, tt.to, tt.viewportCount, tt.first, tt.last, got, tt.want)
			}
		})
	}
}

// The move window derives from viewportCount alone; an endpoint inside
// the held visible range can still be out of the move window when the
// viewport estimate is smaller than the held range.
func TestMoveInVisibleRange_BoundaryIgnoresHeldLastVisible(t *testing.T) {
	tracker := rangeTracker(3, 30)

	if tracker.MoveInVisibleRange(25, 40, 5) {
		t.Error("move endpoint inside held range but past first+viewportCount-1 should be out of range")
	}
	if !tracker.UpdateInVisibleRange(25, 1) {
		t.Error("update at the same position should be in range")
	}
}

func TestRangeQueries_ForcedAnswers(t *testing.T) {
	t.Run("unmeasured viewport forces true", func(t *testing.T) {
		tracker := rangeTracker(NoPosition, NoPosition)

		if !tracker.InsertInVisibleRange(50, 1, 10) {
			t.Error("InsertInVisibleRange should be forced true while unmeasured")
		}
		if !tracker.UpdateInVisibleRange(50, 1) {
			t.Error("UpdateInVisibleRange should be forced true while unmeasured")
		}
		if !tracker.MoveInVisibleRange(50, 60, 10) {
			t.Error("MoveInVisibleRange should be forced true while unmeasured")
		}
		if !tracker.RemoveInVisibleRange(50, 1) {
			t.Error("RemoveInVisibleRange should be forced true while unmeasured")
		}
	})

	t.Run("pending data change forces true", func(t *testing.T) {
		tracker := rangeTracker(3, 8)
		tracker.MarkDataChanged(true)

		if !tracker.UpdateInVisibleRange(50, 1) {
			t.Error("UpdateInVisibleRange should be forced true while a data change is pending")
		}
		if !tracker.InsertInVisibleRange(50, 1, 10) {
			t.Error("InsertInVisibleRange should be forced true while a data change is pending")
		}

		tracker.ResetDataChanged()
		if tracker.UpdateInVisibleRange(50, 1) {
			t.Error("forcing should stop once the pending flag clears")
		}
	})
}
