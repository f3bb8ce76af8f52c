package recycler

import (
	"math"

	"github.com/go-drift/recycler/pkg/scroll"
	"github.com/go-drift/recycler/pkg/viewport"
)

// GridLayoutInfo maps scroll pixels to item indices for a grid of
// fixed-extent rows with spanCount items per row. Items fill rows in
// index order; every item in a visible row counts as visible.
type GridLayoutInfo struct {
	controller *scroll.ScrollController
	adapter    Adapter
	spanCount  int
	itemExtent float64
}

// NewGridLayoutInfo creates a grid layout over controller and adapter.
// spanCount is the number of items per row, itemExtent the fixed row
// extent along the scroll axis.
func NewGridLayoutInfo(controller *scroll.ScrollController, adapter Adapter, spanCount int, itemExtent float64) *GridLayoutInfo {
	return &GridLayoutInfo{
		controller: controller,
		adapter:    adapter,
		spanCount:  spanCount,
		itemExtent: itemExtent,
	}
}

var _ viewport.LayoutInfo = (*GridLayoutInfo)(nil)
var _ RangeEstimator = (*GridLayoutInfo)(nil)
var _ ContentMeasurer = (*GridLayoutInfo)(nil)

func (g *GridLayoutInfo) FirstVisibleIndex() int {
	first, _, _, _ := g.window()
	return first
}

func (g *GridLayoutInfo) LastVisibleIndex() int {
	_, last, _, _ := g.window()
	return last
}

func (g *GridLayoutInfo) FirstFullyVisibleIndex() int {
	_, _, firstFully, _ := g.window()
	return firstFully
}

func (g *GridLayoutInfo) LastFullyVisibleIndex() int {
	_, _, _, lastFully := g.window()
	return lastFully
}

// ItemCount returns the adapter's count.
func (g *GridLayoutInfo) ItemCount() int {
	return g.adapter.ItemCount()
}

// EstimatedViewportCount returns how many items cover one viewport:
// rows per viewport times the span count.
func (g *GridLayoutInfo) EstimatedViewportCount() int {
	viewportExtent := g.controller.ViewportExtent()
	if viewportExtent <= 0 || g.itemExtent <= 0 || g.spanCount <= 0 {
		return viewport.UnknownViewportCount
	}
	return g.spanCount * int(math.Ceil(viewportExtent/g.itemExtent))
}

// ContentExtent returns the total content size along the scroll axis.
func (g *GridLayoutInfo) ContentExtent() float64 {
	return float64(g.rowCount()) * g.itemExtent
}

func (g *GridLayoutInfo) rowCount() int {
	if g.spanCount <= 0 {
		return 0
	}
	return (g.adapter.ItemCount() + g.spanCount - 1) / g.spanCount
}

// window computes row bounds with the shared slot math and maps them to
// item indices.
func (g *GridLayoutInfo) window() (first, last, firstFully, lastFully int) {
	count := g.adapter.ItemCount()
	viewportExtent := g.controller.ViewportExtent()
	if count <= 0 || g.itemExtent <= 0 || viewportExtent <= 0 || g.spanCount <= 0 {
		return noWindow()
	}

	top := g.controller.Offset()
	rowFirst, rowLast, rowFirstFully, rowLastFully := extentWindow(top, top+viewportExtent, g.itemExtent, g.rowCount())
	if rowFirst == viewport.NoPosition {
		return noWindow()
	}

	first = rowFirst * g.spanCount
	last = (rowLast+1)*g.spanCount - 1
	if last > count-1 {
		last = count - 1
	}

	if rowFirstFully == viewport.NoPosition {
		return first, last, viewport.NoPosition, viewport.NoPosition
	}
	firstFully = rowFirstFully * g.spanCount
	lastFully = (rowLastFully+1)*g.spanCount - 1
	if lastFully > count-1 {
		lastFully = count - 1
	}
	return first, last, firstFully, lastFully
}
