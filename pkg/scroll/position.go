package scroll

import "math"

// ScrollPosition stores the current scroll offset and extents for one
// scrollable surface.
type ScrollPosition struct {
	offset     float64
	min        float64
	max        float64
	physics    ScrollPhysics
	onUpdate   func()
	controller *ScrollController
	ballistic  *ballisticState
}

// NewScrollPosition creates a scroll position attached to controller.
// onUpdate fires after every offset change, before controller listeners.
func NewScrollPosition(controller *ScrollController, physics ScrollPhysics, onUpdate func()) *ScrollPosition {
	if physics == nil {
		physics = ClampingScrollPhysics{}
	}
	position := &ScrollPosition{
		offset:     0,
		physics:    physics,
		onUpdate:   onUpdate,
		controller: controller,
	}
	if controller != nil {
		position.offset = controller.InitialScrollOffset
		controller.attach(position)
	}
	return position
}

// Offset returns the current offset along the scroll axis.
func (p *ScrollPosition) Offset() float64 {
	return p.offset
}

// SetOffset updates the scroll offset. Bouncing physics admit a bounded
// overscroll past the extents; everything else clamps.
func (p *ScrollPosition) SetOffset(value float64) {
	allowOverscroll := isBouncing(p.physics)
	clamped := p.clampOffset(value, allowOverscroll)
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	p.notify()
}

// SetExtents updates the min/max scroll extents and re-clamps the
// current offset against them.
func (p *ScrollPosition) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
	p.SetOffset(p.offset)
}

// ApplyUserOffset feeds a drag delta through the physics pipeline. Any
// running fling stops first; the user's finger wins.
func (p *ScrollPosition) ApplyUserOffset(delta float64) {
	p.StopBallistic()
	if p.physics == nil {
		p.SetOffset(p.offset + delta)
		return
	}
	adjusted := p.physics.ApplyPhysicsToUserOffset(p, delta)
	proposed := p.offset + adjusted
	overscroll := p.physics.ApplyBoundaryConditions(p, proposed)
	proposed -= overscroll
	p.SetOffset(proposed)
}

// StartBallistic launches an inertial scroll at the given velocity. An
// overscrolled position always starts a simulation so it can spring back
// inside the extents, even at zero velocity; otherwise velocities under
// the rest threshold are ignored.
func (p *ScrollPosition) StartBallistic(velocity float64) {
	p.StopBallistic()
	velocity = p.normalizeBallisticVelocity(velocity)
	if isOverscrolled(p) {
		p.ballistic = newBallisticState(p, velocity)
		registerBallistic(p)
		p.notify()
		return
	}
	if math.Abs(velocity) < 5 {
		return
	}
	p.ballistic = newBallisticState(p, velocity)
	registerBallistic(p)
	p.notify()
}

func (p *ScrollPosition) normalizeBallisticVelocity(velocity float64) float64 {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0
	}
	velocity *= 0.9
	viewport := viewportExtentForPosition(p)
	maxAbs := Clamp(viewport*5.4, 1080, 4500)
	return Clamp(velocity, -maxAbs, maxAbs)
}

// StopBallistic cancels the inertial simulation, leaving the offset
// wherever the last frame put it.
func (p *ScrollPosition) StopBallistic() {
	if p.ballistic != nil {
		unregisterBallistic(p)
		p.ballistic = nil
	}
}

// IsBallisticActive reports whether an inertial simulation is running
// for this position.
func (p *ScrollPosition) IsBallisticActive() bool {
	return p.ballistic != nil
}

// Dispose stops any simulation and detaches the position from its
// controller. The position must not be used afterwards.
func (p *ScrollPosition) Dispose() {
	p.StopBallistic()
	if p.controller != nil {
		p.controller.detach(p)
		p.controller = nil
	}
}

func (p *ScrollPosition) notify() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
	if p.controller != nil {
		p.controller.notifyListeners()
	}
}

func (p *ScrollPosition) clampOffset(value float64, allowOverscroll bool) float64 {
	if !allowOverscroll {
		return Clamp(value, p.min, p.max)
	}
	limit := Clamp(viewportExtentForPosition(p)*0.35, 80, 220)
	return Clamp(value, p.min-limit, p.max+limit)
}

func viewportExtentForPosition(p *ScrollPosition) float64 {
	if p != nil && p.controller != nil && p.controller.viewportExtent > 0 {
		return p.controller.viewportExtent
	}
	return 600
}

func isOverscrolled(position *ScrollPosition) bool {
	return position.offset < position.min || position.offset > position.max
}
