package recycler

import (
	"math"

	"github.com/go-drift/recycler/pkg/platform"
	"github.com/go-drift/recycler/pkg/scroll"
	"github.com/go-drift/recycler/pkg/viewport"
)

// Options configures a Binder.
type Options struct {
	// FirstVisible and LastVisible seed the tracker's visible bounds,
	// typically restored from a saved session. The zero values target
	// the top of the list; use viewport.NoPosition when unknown.
	FirstVisible int
	LastVisible  int

	// CacheExtent is the number of pixels beyond the visible area the
	// host materializes; VisibleWindow widens its answer accordingly.
	CacheExtent float64

	// Controller is the scroll controller the layout reads. A nil
	// controller creates a private one.
	Controller *scroll.ScrollController

	// Physics controls edge behavior; nil defaults to
	// scroll.ClampingScrollPhysics.
	Physics scroll.ScrollPhysics

	// Queue receives the deferred data-change re-evaluation. A nil
	// queue uses the dispatcher registered with platform.RegisterDispatch.
	Queue platform.Queue

	// OnUpdate fires after every scroll offset change, before other
	// listeners. Hosts hang their repaint on it.
	OnUpdate func()
}

// Binder glues an adapter, a layout, and a scroll controller into one
// virtualized surface. It owns the scroll position and the viewport
// tracker, forwards scroll changes to the tracker, and translates data
// mutations into range-membership checks.
//
// All methods must be called from the owning (UI) thread.
type Binder struct {
	adapter     Adapter
	layout      viewport.LayoutInfo
	controller  *scroll.ScrollController
	position    *scroll.ScrollPosition
	tracker     *viewport.Tracker
	cacheExtent float64

	removeScrollListener func()
	disposed             bool
}

// NewBinder wires adapter and layout into a new binder. A nil opts
// seeds the tracker with viewport.NoPosition bounds and defaults
// everything else.
func NewBinder(adapter Adapter, layout viewport.LayoutInfo, opts *Options) *Binder {
	if opts == nil {
		opts = &Options{
			FirstVisible: viewport.NoPosition,
			LastVisible:  viewport.NoPosition,
		}
	}
	controller := opts.Controller
	if controller == nil {
		controller = &scroll.ScrollController{}
	}
	physics := opts.Physics
	if physics == nil {
		physics = scroll.ClampingScrollPhysics{}
	}

	b := &Binder{
		adapter:     adapter,
		layout:      layout,
		controller:  controller,
		cacheExtent: opts.CacheExtent,
	}
	b.position = scroll.NewScrollPosition(controller, physics, opts.OnUpdate)
	b.tracker = viewport.NewTracker(opts.FirstVisible, opts.LastVisible, layout, opts.Queue)
	b.removeScrollListener = controller.AddListener(func() { b.tracker.OnScrolled() })
	b.updateScrollExtents()
	return b
}

// Tracker returns the viewport tracker. Register change listeners here.
func (b *Binder) Tracker() *viewport.Tracker {
	return b.tracker
}

// Controller returns the scroll controller the binder is attached to.
func (b *Binder) Controller() *scroll.ScrollController {
	return b.controller
}

// Position returns the scroll position owned by the binder. Hosts feed
// drags and flings into it.
func (b *Binder) Position() *scroll.ScrollPosition {
	return b.position
}

// SetViewportExtent records the host's measured size along the scroll
// axis and refreshes the scroll extents against the content.
func (b *Binder) SetViewportExtent(extent float64) {
	b.controller.SetViewportExtent(extent)
	b.updateScrollExtents()
}

// NotifyItemRangeInserted records an insertion of count items at
// position. Call it after mutating the adapter's backing data.
func (b *Binder) NotifyItemRangeInserted(position, count int) {
	b.tracker.MarkDataChanged(b.tracker.InsertInVisibleRange(position, count, b.viewportCount()))
	b.updateScrollExtents()
}

// NotifyItemRangeUpdated records an in-place change of count items at
// position.
func (b *Binder) NotifyItemRangeUpdated(position, count int) {
	b.tracker.MarkDataChanged(b.tracker.UpdateInVisibleRange(position, count))
}

// NotifyItemMoved records a move from fromPosition to toPosition.
func (b *Binder) NotifyItemMoved(fromPosition, toPosition int) {
	b.tracker.MarkDataChanged(b.tracker.MoveInVisibleRange(fromPosition, toPosition, b.viewportCount()))
}

// NotifyItemRangeRemoved records a removal of count items at position.
// Call it after mutating the adapter's backing data.
func (b *Binder) NotifyItemRangeRemoved(position, count int) {
	b.tracker.MarkDataChanged(b.tracker.RemoveInVisibleRange(position, count))
	b.updateScrollExtents()
}

// NotifyDataSetChanged records a wholesale data change; the next
// evaluation re-dispatches even if the bounds did not move.
func (b *Binder) NotifyDataSetChanged() {
	b.tracker.MarkDataChanged(true)
	b.updateScrollExtents()
}

// VisibleWindow returns the index window the host should materialize:
// the tracked visible range widened by the configured cache extent and
// clamped to the data set. Both bounds are viewport.NoPosition while
// the viewport is unmeasured.
func (b *Binder) VisibleWindow() (first, last int) {
	snapshot := b.tracker.Snapshot()
	if !snapshot.Measured() {
		return viewport.NoPosition, viewport.NoPosition
	}
	first = snapshot.FirstVisible
	last = snapshot.LastVisible
	if extra := b.cacheItems(); extra > 0 {
		first -= extra
		last += extra
	}
	if first < 0 {
		first = 0
	}
	if count := b.adapter.ItemCount(); last > count-1 {
		last = count - 1
	}
	return first, last
}

// Dispose detaches the binder from its controller and stops any active
// fling. The binder must not be used afterwards.
func (b *Binder) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.removeScrollListener()
	b.position.Dispose()
}

// viewportCount asks the layout for its per-viewport item estimate,
// falling back to the conservative unknown answer.
func (b *Binder) viewportCount() int {
	if estimator, ok := b.layout.(RangeEstimator); ok {
		return estimator.EstimatedViewportCount()
	}
	return viewport.UnknownViewportCount
}

// cacheItems converts the pixel cache extent into a per-side item
// count using the layout's viewport estimate.
func (b *Binder) cacheItems() int {
	if b.cacheExtent <= 0 {
		return 0
	}
	viewportExtent := b.controller.ViewportExtent()
	count := b.viewportCount()
	if viewportExtent <= 0 || count <= 0 {
		return 0
	}
	return int(math.Ceil(b.cacheExtent * float64(count) / viewportExtent))
}

// updateScrollExtents keeps the scrollable range in step with the
// measured content.
func (b *Binder) updateScrollExtents() {
	measurer, ok := b.layout.(ContentMeasurer)
	if !ok {
		return
	}
	viewportExtent := b.controller.ViewportExtent()
	max := measurer.ContentExtent() - viewportExtent
	if max < 0 {
		max = 0
	}
	b.position.SetExtents(0, max)
}
