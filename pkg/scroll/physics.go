package scroll

// ScrollPhysics decides how drags behave at the extent edges.
type ScrollPhysics interface {
	// ApplyPhysicsToUserOffset transforms a raw drag delta, e.g. to add
	// resistance while overscrolled.
	ApplyPhysicsToUserOffset(position *ScrollPosition, offset float64) float64
	// ApplyBoundaryConditions returns the part of a proposed offset that
	// lies out of bounds; the caller subtracts it.
	ApplyBoundaryConditions(position *ScrollPosition, value float64) float64
}

// ClampingScrollPhysics pins the offset inside the extents, the Android
// list feel.
type ClampingScrollPhysics struct{}

// ApplyPhysicsToUserOffset passes the drag delta through untouched.
func (ClampingScrollPhysics) ApplyPhysicsToUserOffset(_ *ScrollPosition, offset float64) float64 {
	return offset
}

// ApplyBoundaryConditions reports any excursion past the extents.
func (ClampingScrollPhysics) ApplyBoundaryConditions(position *ScrollPosition, value float64) float64 {
	if value < position.min {
		return value - position.min
	}
	if value > position.max {
		return value - position.max
	}
	return 0
}

// BouncingScrollPhysics lets drags run past the extents under growing
// resistance, the iOS list feel.
type BouncingScrollPhysics struct{}

// ApplyPhysicsToUserOffset shrinks the delta while the position is
// already overscrolled.
func (BouncingScrollPhysics) ApplyPhysicsToUserOffset(position *ScrollPosition, offset float64) float64 {
	if (position.offset <= position.min && offset < 0) || (position.offset >= position.max && offset > 0) {
		overscroll := 0.0
		if position.offset < position.min {
			overscroll = position.min - position.offset
		} else if position.offset > position.max {
			overscroll = position.offset - position.max
		}
		viewport := viewportExtentForPosition(position)
		fraction := overscroll / viewport
		// Progressive resistance near edges to match the iOS rubber-band feel.
		resistance := 1.0 / (1.0 + 2.4*fraction)
		if resistance < 0.12 {
			resistance = 0.12
		}
		return offset * resistance
	}
	return offset
}

// ApplyBoundaryConditions reports no boundary overflow; SetOffset still
// bounds the overscroll.
func (BouncingScrollPhysics) ApplyBoundaryConditions(position *ScrollPosition, value float64) float64 {
	return 0
}

func isBouncing(physics ScrollPhysics) bool {
	switch physics.(type) {
	case BouncingScrollPhysics:
		return true
	default:
		return false
	}
}

// Clamp restricts value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
