package recycler

import (
	"math"

	"github.com/go-drift/recycler/pkg/scroll"
	"github.com/go-drift/recycler/pkg/viewport"
)

// LinearLayoutInfo maps scroll pixels to item indices for a single
// column (or row) of fixed-extent items. It implements
// viewport.LayoutInfo plus the RangeEstimator and ContentMeasurer
// capabilities.
type LinearLayoutInfo struct {
	controller *scroll.ScrollController
	adapter    Adapter
	itemExtent float64
}

// NewLinearLayoutInfo creates a layout over controller and adapter with
// a fixed per-item extent along the scroll axis.
func NewLinearLayoutInfo(controller *scroll.ScrollController, adapter Adapter, itemExtent float64) *LinearLayoutInfo {
	return &LinearLayoutInfo{
		controller: controller,
		adapter:    adapter,
		itemExtent: itemExtent,
	}
}

var _ viewport.LayoutInfo = (*LinearLayoutInfo)(nil)
var _ RangeEstimator = (*LinearLayoutInfo)(nil)
var _ ContentMeasurer = (*LinearLayoutInfo)(nil)

func (l *LinearLayoutInfo) FirstVisibleIndex() int {
	first, _, _, _ := l.window()
	return first
}

func (l *LinearLayoutInfo) LastVisibleIndex() int {
	_, last, _, _ := l.window()
	return last
}

func (l *LinearLayoutInfo) FirstFullyVisibleIndex() int {
	_, _, firstFully, _ := l.window()
	return firstFully
}

func (l *LinearLayoutInfo) LastFullyVisibleIndex() int {
	_, _, _, lastFully := l.window()
	return lastFully
}

// ItemCount returns the adapter's count; it is known even before the
// viewport has been measured.
func (l *LinearLayoutInfo) ItemCount() int {
	return l.adapter.ItemCount()
}

// EstimatedViewportCount returns how many items cover one viewport.
func (l *LinearLayoutInfo) EstimatedViewportCount() int {
	viewportExtent := l.controller.ViewportExtent()
	if viewportExtent <= 0 || l.itemExtent <= 0 {
		return viewport.UnknownViewportCount
	}
	return int(math.Ceil(viewportExtent / l.itemExtent))
}

// ContentExtent returns the total content size along the scroll axis.
func (l *LinearLayoutInfo) ContentExtent() float64 {
	return float64(l.adapter.ItemCount()) * l.itemExtent
}

// window computes the visible and fully-visible index bounds for the
// current offset, or NoPosition values while unmeasured or off-content.
func (l *LinearLayoutInfo) window() (first, last, firstFully, lastFully int) {
	count := l.adapter.ItemCount()
	viewportExtent := l.controller.ViewportExtent()
	if count <= 0 || l.itemExtent <= 0 || viewportExtent <= 0 {
		return noWindow()
	}
	top := l.controller.Offset()
	return extentWindow(top, top+viewportExtent, l.itemExtent, count)
}

// extentWindow computes visible and fully-visible slot bounds for the
// pixel window [top, bottom] over count fixed-extent slots. Linear
// layouts use item slots; grid layouts use row slots.
func extentWindow(top, bottom, slotExtent float64, count int) (first, last, firstFully, lastFully int) {
	first = int(math.Floor(top / slotExtent))
	last = int(math.Ceil(bottom/slotExtent)) - 1
	if last < 0 || first > count-1 {
		return noWindow()
	}
	if first < 0 {
		first = 0
	}
	if last > count-1 {
		last = count - 1
	}

	// A slot is fully visible when both its edges are inside the window.
	firstFully = int(math.Ceil(top / slotExtent))
	lastFully = int(math.Floor(bottom/slotExtent)) - 1
	if firstFully < first {
		firstFully = first
	}
	if lastFully > last {
		lastFully = last
	}
	if firstFully > lastFully {
		firstFully = viewport.NoPosition
		lastFully = viewport.NoPosition
	}
	return first, last, firstFully, lastFully
}

func noWindow() (int, int, int, int) {
	return viewport.NoPosition, viewport.NoPosition, viewport.NoPosition, viewport.NoPosition
}
