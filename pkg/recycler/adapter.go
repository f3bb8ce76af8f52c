// Package recycler binds a data source, a scroll controller, and a
// layout into a virtualized list surface with visible-range tracking.
//
// # Wiring
//
// A [Binder] owns the glue: it attaches a scroll position to the
// controller, forwards every scroll change to a viewport.Tracker, and
// translates data mutations into range-membership checks so only
// on-screen changes trigger a re-dispatch:
//
//	adapter := myAdapter{...}
//	controller := &scroll.ScrollController{}
//	layout := recycler.NewLinearLayoutInfo(controller, adapter, 36)
//	binder := recycler.NewBinder(adapter, layout, &recycler.Options{
//	    Controller:   controller,
//	    FirstVisible: viewport.NoPosition,
//	    LastVisible:  viewport.NoPosition,
//	})
//	binder.Tracker().AddListener(myListener)
//
// Hosts report their measured size with [Binder.SetViewportExtent],
// materialize the rows named by [Binder.VisibleWindow], and call the
// Notify methods after mutating the adapter's backing data.
package recycler

// Adapter supplies the item universe for one recycler surface. The
// binder only needs the count; item content stays with the host.
type Adapter interface {
	// ItemCount returns the total number of items.
	ItemCount() int
}

// RangeEstimator is implemented by layouts that can estimate how many
// items fill one viewport. Layouts without it force every mutation
// check to answer conservatively.
type RangeEstimator interface {
	// EstimatedViewportCount returns the approximate number of items
	// per viewport, or viewport.UnknownViewportCount before measurement.
	EstimatedViewportCount() int
}

// ContentMeasurer is implemented by layouts that can measure the total
// content extent in pixels. The binder uses it to keep scroll extents
// in step with the data set.
type ContentMeasurer interface {
	// ContentExtent returns the total scrollable content size along the
	// scroll axis.
	ContentExtent() float64
}
