// Package viewport tracks the visible-range state of a virtualized,
// scrollable list and converts low-level scroll and data-mutation
// events into deduplicated "viewport changed" notifications.
//
// # Core Components
//
//   - [Snapshot]: The last-observed visible range: partially and fully
//     visible index bounds plus the total item count.
//
//   - [Tracker]: Owns the snapshot. Scroll deltas funnel in through
//     [Tracker.OnScrolled]; data mutations are classified against the
//     visible window with the range queries and flagged with
//     [Tracker.MarkDataChanged], which debounces a re-evaluation onto
//     the UI-thread queue.
//
//   - [Listener]: Observer contract. Registered listeners are invoked
//     synchronously, in registration order, each time an evaluation
//     detects an observable change.
//
//   - [LayoutInfo]: The measurement provider the tracker queries for
//     fresh visible bounds. The recycler package supplies linear and
//     grid implementations.
//
// # Threading
//
// A Tracker is owned by a single thread, normally the host's UI thread,
// and performs no internal locking. The only concurrency mechanism is
// the UI-thread queue used to defer data-change re-evaluation, and the
// deferred task runs on the owning thread as well.
//
// # Dedup Rule
//
// A scroll evaluation whose freshly queried snapshot equals the held one
// dispatches nothing, so high-frequency scroll callbacks collapse into
// notifications only when a bound actually moves. A data-change
// evaluation always dispatches, even with identical coordinates, because
// the item content behind those coordinates changed.
package viewport

import "fmt"

// NoPosition is the sentinel index reported while a bound is unknown,
// e.g. before the first layout pass or for an empty list.
const NoPosition = -1

// UnknownViewportCount is the viewportCount value telling the range
// queries that the caller cannot estimate how many items fit in the
// viewport. Queries given it answer "in range" unconditionally.
const UnknownViewportCount = -1

// Reason identifies what triggered a viewport evaluation.
type Reason int

const (
	// ReasonScroll marks an evaluation triggered by a scroll delta.
	ReasonScroll Reason = iota
	// ReasonDataChange marks a deferred re-evaluation triggered by a
	// data mutation inside the visible range.
	ReasonDataChange
)

func (r Reason) String() string {
	switch r {
	case ReasonScroll:
		return "scroll"
	case ReasonDataChange:
		return "data-change"
	default:
		return "unknown"
	}
}

// Snapshot is a value capture of the visible range. Bounds are item
// indices, NoPosition while unknown. The fully-visible bounds cover
// items rendered with zero clipping; they are always within the visible
// bounds when both are known.
//
// The tracker does not validate ordering between the bounds; they are
// reported as the layout provider answered them.
type Snapshot struct {
	FirstVisible      int
	LastVisible       int
	FirstFullyVisible int
	LastFullyVisible  int
	TotalItemCount    int
}

// Measured reports whether both visible bounds are known. A tracker
// never dispatches while unmeasured.
func (s Snapshot) Measured() bool {
	return s.FirstVisible >= 0 && s.LastVisible >= 0
}

func (s Snapshot) String() string {
	return fmt.Sprintf("visible[%d,%d] fully[%d,%d] of %d",
		s.FirstVisible, s.LastVisible, s.FirstFullyVisible, s.LastFullyVisible, s.TotalItemCount)
}

// LayoutInfo answers visibility queries for the tracker. All methods are
// pure queries, callable at any time, returning NoPosition (or zero for
// ItemCount) while unknown or empty.
type LayoutInfo interface {
	FirstVisibleIndex() int
	LastVisibleIndex() int
	FirstFullyVisibleIndex() int
	LastFullyVisibleIndex() int
	ItemCount() int
}

// Listener observes dispatched viewport changes.
//
// Listeners are compared by interface identity for removal, so
// implementations should be pointer-shaped. The tracker provides no
// isolation between listeners: a panic aborts the remaining
// notifications for that event and propagates to the caller.
type Listener interface {
	OnViewportChanged(firstVisible, lastVisible, firstFullyVisible, lastFullyVisible int, reason Reason)
}
