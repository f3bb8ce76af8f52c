package viewport

import "github.com/go-drift/recycler/pkg/platform"

// Tracker holds the visible-range state of one scrollable surface and
// dispatches deduplicated change notifications to its listeners.
//
// All methods must be called from the owning (UI) thread; see the
// package documentation for the threading model.
type Tracker struct {
	layout LayoutInfo
	task   *platform.SingleTask

	current           Snapshot
	pendingDataChange bool
	listeners         []Listener
}

// NewTracker creates a tracker for the surface measured by layout.
//
// The visible bounds are seeded from firstVisible and lastVisible as
// given, typically restored from a previous session or NoPosition when
// unknown; the fully-visible bounds and item count are queried from
// layout. Deferred data-change re-evaluation is posted to queue; a nil
// queue uses the dispatcher registered with platform.RegisterDispatch.
func NewTracker(firstVisible, lastVisible int, layout LayoutInfo, queue platform.Queue) *Tracker {
	t := &Tracker{
		layout: layout,
		current: Snapshot{
			FirstVisible:      firstVisible,
			LastVisible:       lastVisible,
			FirstFullyVisible: layout.FirstFullyVisibleIndex(),
			LastFullyVisible:  layout.LastFullyVisibleIndex(),
			TotalItemCount:    layout.ItemCount(),
		},
	}
	t.task = platform.NewSingleTask(queue, func() { t.evaluate(ReasonDataChange) })
	return t
}

// OnScrolled evaluates the viewport after a scroll delta. Hosts wire it
// to their scroll-event source; every delta may call it, since unchanged
// bounds dispatch nothing.
func (t *Tracker) OnScrolled() {
	t.evaluate(ReasonScroll)
}

// evaluate queries fresh bounds and dispatches if they are reportable.
//
// An unmeasured fresh snapshot is never reported. An unchanged snapshot
// is reported only for ReasonDataChange. Completing an evaluation,
// dispatched or not, with or without listeners, clears the pending
// data-change flag.
func (t *Tracker) evaluate(reason Reason) {
	fresh := Snapshot{
		FirstVisible:      t.layout.FirstVisibleIndex(),
		LastVisible:       t.layout.LastVisibleIndex(),
		FirstFullyVisible: t.layout.FirstFullyVisibleIndex(),
		LastFullyVisible:  t.layout.LastFullyVisibleIndex(),
		TotalItemCount:    t.layout.ItemCount(),
	}

	if fresh.FirstVisible < 0 || fresh.LastVisible < 0 {
		return
	}
	if fresh == t.current && reason != ReasonDataChange {
		return
	}

	t.current = fresh

	if len(t.listeners) > 0 {
		// Dispatch over a copy so a listener may add or remove listeners
		// without corrupting this sweep.
		listeners := make([]Listener, len(t.listeners))
		copy(listeners, t.listeners)
		for _, l := range listeners {
			l.OnViewportChanged(
				fresh.FirstVisible,
				fresh.LastVisible,
				fresh.FirstFullyVisible,
				fresh.LastFullyVisible,
				reason,
			)
		}
	}

	t.ResetDataChanged()
}

// MarkDataChanged records whether a data mutation touched the visible
// range. Marks accumulate: once any mutation was in range, the flag
// stays set until an evaluation completes or ResetDataChanged is called.
// While the flag is set, each call (re)schedules a single coalesced
// data-change re-evaluation on the UI-thread queue.
func (t *Tracker) MarkDataChanged(inRange bool) {
	t.pendingDataChange = t.pendingDataChange || inRange
	if t.pendingDataChange {
		t.task.Schedule()
	}
}

// ResetDataChanged clears the pending data-change flag. It does not
// cancel or run a scheduled re-evaluation.
func (t *Tracker) ResetDataChanged() {
	t.pendingDataChange = false
}

// DataChangePending reports whether a data mutation inside the visible
// range is awaiting its deferred re-evaluation.
func (t *Tracker) DataChangePending() bool {
	return t.pendingDataChange
}

// Snapshot returns the currently held visible-range snapshot.
func (t *Tracker) Snapshot() Snapshot {
	return t.current
}

// AddListener registers l at the end of the notification order. A nil
// listener is ignored. Listeners are not deduplicated; registering the
// same reference twice notifies it twice.
func (t *Tracker) AddListener(l Listener) {
	if l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters the first listener equal to l, comparing by
// interface identity. Nil or unregistered listeners are ignored.
func (t *Tracker) RemoveListener(l Listener) {
	if l == nil {
		return
	}
	for i, existing := range t.listeners {
		if existing == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}
