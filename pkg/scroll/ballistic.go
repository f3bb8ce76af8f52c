package scroll

import (
	"math"
	"sync"
	"time"

	"github.com/go-drift/recycler/pkg/animation"
)

// ballisticState simulates one inertial scroll: plain deceleration
// inside the extents, handed off to a spring once the offset crosses a
// boundary under bouncing physics.
type ballisticState struct {
	position *ScrollPosition
	velocity float64
	lastTime time.Time
	spring   *animation.SpringSimulation
}

func newBallisticState(position *ScrollPosition, velocity float64) *ballisticState {
	b := &ballisticState{
		position: position,
		velocity: velocity,
		lastTime: animation.Now(),
	}
	if isOverscrolled(position) && isBouncing(position.physics) {
		b.initSpring()
	}
	return b
}

func (b *ballisticState) initSpring() {
	pos := b.position
	var target float64
	if pos.offset < pos.min {
		target = pos.min
	} else {
		target = pos.max
	}
	b.spring = animation.NewSpringSimulation(
		animation.IOSSpring(),
		pos.offset,
		b.velocity,
		target,
	)
}

func (b *ballisticState) step(now time.Time) bool {
	if now.Before(b.lastTime) {
		b.lastTime = now
		return false
	}
	dt := now.Sub(b.lastTime).Seconds()
	b.lastTime = now
	if dt <= 0 {
		return false
	}
	// Cap dt so a stalled frame cannot make the simulation catch up in
	// one large jump.
	const maxDt = 0.032
	if dt > maxDt {
		dt = maxDt
	}
	return b.advance(dt)
}

func (b *ballisticState) advance(dt float64) bool {
	if dt <= 0 {
		return false
	}
	pos := b.position

	// A boundary crossing under bouncing physics hands the simulation to
	// a spring targeting the nearest extent.
	if b.spring == nil && isOverscrolled(pos) && isBouncing(pos.physics) {
		b.initSpring()
	}
	if b.spring != nil {
		done := b.spring.Step(dt)
		pos.offset = b.spring.Position()
		b.velocity = b.spring.Velocity()
		pos.notify()
		return done
	}

	velocity := b.velocity
	decel := 2200.0 + 0.385*math.Abs(velocity)
	if velocity > 0 {
		velocity -= decel * dt
		if velocity < 0 {
			velocity = 0
		}
	} else if velocity < 0 {
		velocity += decel * dt
		if velocity > 0 {
			velocity = 0
		}
	}
	offset := pos.offset + velocity*dt

	b.velocity = velocity
	pos.offset = pos.clampOffset(offset, isBouncing(pos.physics))
	pos.notify()

	return math.Abs(velocity) < 5
}

var ballisticMu sync.Mutex
var ballisticPositions = make(map[*ScrollPosition]struct{})

func registerBallistic(position *ScrollPosition) {
	ballisticMu.Lock()
	ballisticPositions[position] = struct{}{}
	ballisticMu.Unlock()
}

func unregisterBallistic(position *ScrollPosition) {
	ballisticMu.Lock()
	delete(ballisticPositions, position)
	ballisticMu.Unlock()
}

// HasActiveBallistics reports whether any position currently has an
// inertial simulation in flight.
func HasActiveBallistics() bool {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	return len(ballisticPositions) > 0
}

// StepBallistics advances any active scroll simulations. Hosts call it
// once per frame while HasActiveBallistics reports true.
func StepBallistics() {
	ballisticMu.Lock()
	if len(ballisticPositions) == 0 {
		ballisticMu.Unlock()
		return
	}
	now := animation.Now()
	positions := make([]*ScrollPosition, 0, len(ballisticPositions))
	for position := range ballisticPositions {
		positions = append(positions, position)
	}
	ballisticMu.Unlock()

	for _, position := range positions {
		if position.ballistic == nil {
			continue
		}
		if position.ballistic.step(now) {
			position.StopBallistic()
		}
	}
}
