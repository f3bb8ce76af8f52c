// Package animation provides the timing and physics primitives behind
// scroll motion in recycler hosts.
//
// # Core Components
//
//   - [Clock]: Replaceable time source. Production code reads the system
//     clock; tests install a fake via [SetClock] to drive simulations
//     deterministically.
//
//   - [SpringSimulation]: Damped-spring integrator used for overscroll
//     bounce-back and other gesture-driven settling motion.
//
// # Basic Usage
//
// Create a simulation from a spring description and step it each frame
// with the elapsed time in seconds:
//
//	sim := animation.NewSpringSimulation(animation.IOSSpring(), offset, velocity, target)
//	for !sim.IsDone() {
//	    sim.Step(dt)
//	    apply(sim.Position())
//	}
package animation

import "math"

// Spring describes the physical constants of a damped spring.
type Spring struct {
	// Mass of the object attached to the spring, in abstract units.
	Mass float64
	// Stiffness is the spring constant k. Higher values settle faster.
	Stiffness float64
	// Damping is the friction coefficient. Lower values oscillate more.
	Damping float64
}

// IOSSpring returns spring constants tuned to match the iOS scroll
// bounce-back: close to critically damped, so motion settles onto the
// target without visible oscillation.
func IOSSpring() Spring {
	return Spring{Mass: 1, Stiffness: 170, Damping: 26}
}

// BouncySpring returns an underdamped spring that overshoots its target
// and oscillates briefly before settling.
func BouncySpring() Spring {
	return Spring{Mass: 1, Stiffness: 180, Damping: 12}
}

// Settling thresholds. When both position error and velocity fall below
// these, the simulation snaps to the target and reports done.
const (
	springRestDistance = 0.25
	springRestVelocity = 1.0
)

// SpringSimulation integrates a damped spring toward a target position.
//
// The integrator is semi-implicit Euler, which is stable at the frame
// deltas produced by UI hosts (the scroll ballistics cap dt well below
// the stability bound for these spring constants).
type SpringSimulation struct {
	spring   Spring
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity, settling toward target.
func NewSpringSimulation(spring Spring, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{
		spring:   spring,
		position: position,
		velocity: velocity,
		target:   target,
	}
}

// Step advances the simulation by dt seconds and returns true once the
// spring has settled. After settling, Position reports exactly the
// target and further steps are no-ops.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}

	displacement := s.position - s.target
	acceleration := (-s.spring.Stiffness*displacement - s.spring.Damping*s.velocity) / s.spring.Mass
	s.velocity += acceleration * dt
	s.position += s.velocity * dt

	if math.Abs(s.position-s.target) < springRestDistance && math.Abs(s.velocity) < springRestVelocity {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current simulated position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current simulated velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// IsDone reports whether the spring has settled on its target.
func (s *SpringSimulation) IsDone() bool { return s.done }
