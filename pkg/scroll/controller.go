// Package scroll provides the scroll engine for recycler hosts: an
// observable controller, per-surface positions with pixel extents, and
// pluggable edge physics with inertial fling simulations.
//
// # Scroll Physics
//
// Edge behavior is pluggable:
//   - [ClampingScrollPhysics] (default) pins the offset inside the
//     extents, Android style.
//   - [BouncingScrollPhysics] admits a resisted overscroll that springs
//     back, iOS style.
//
// # Scroll Controller
//
// A [ScrollController] observes and drives every position attached to
// it:
//
//	controller := &scroll.ScrollController{}
//	remove := controller.AddListener(func() {
//	    render(controller.Offset())
//	})
//	defer remove()
//
// Hosts report their measured viewport with [ScrollController.SetViewportExtent]
// and drive active flings once per frame with [StepBallistics].
package scroll

import (
	"slices"
	"time"
)

// ScrollController is the observable handle over one or more attached
// scroll positions. Layouts read the offset through it; hosts register
// listeners and report viewport measurements on it.
type ScrollController struct {
	InitialScrollOffset float64
	positions           []*ScrollPosition
	viewportExtent      float64
	listeners           map[int]func()
	nextListenerID      int
}

// Offset returns the first attached position's offset, or the initial
// offset while nothing is attached.
func (c *ScrollController) Offset() float64 {
	if len(c.positions) > 0 {
		return c.positions[0].Offset()
	}
	return c.InitialScrollOffset
}

// ViewportExtent returns the last reported viewport extent, in pixels.
func (c *ScrollController) ViewportExtent() float64 {
	return c.viewportExtent
}

// SetViewportExtent records the measured viewport size along the scroll
// axis. Hosts call it after every (re)measure; an unchanged extent
// notifies nothing.
func (c *ScrollController) SetViewportExtent(extent float64) {
	if extent == c.viewportExtent {
		return
	}
	c.viewportExtent = extent
	c.notifyListeners()
}

// AddListener registers a callback for scroll changes and returns a
// function that removes it.
func (c *ScrollController) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// JumpTo moves every attached position to offset without animation.
func (c *ScrollController) JumpTo(offset float64) {
	c.InitialScrollOffset = offset
	if len(c.positions) == 0 {
		c.notifyListeners()
		return
	}
	for _, position := range c.positions {
		position.SetOffset(offset)
	}
}

// AnimateTo currently jumps straight to offset; the duration is
// accepted for callers that will want eased motion later.
func (c *ScrollController) AnimateTo(offset float64, _ time.Duration) {
	c.JumpTo(offset)
}

func (c *ScrollController) attach(position *ScrollPosition) {
	if slices.Contains(c.positions, position) {
		return
	}
	c.positions = append(c.positions, position)
}

func (c *ScrollController) detach(position *ScrollPosition) {
	for i, existing := range c.positions {
		if existing == position {
			c.positions = append(c.positions[:i], c.positions[i+1:]...)
			return
		}
	}
}

func (c *ScrollController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
