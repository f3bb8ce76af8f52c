package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/recycler/pkg/animation"
	rectest "github.com/go-drift/recycler/pkg/testing"
)

func TestScrollPosition_SetOffsetClampsToExtents(t *testing.T) {
	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 500)

	p.SetOffset(600)
	if p.Offset() != 500 {
		t.Errorf("expected clamp to max extent 500, got %v", p.Offset())
	}

	p.SetOffset(-40)
	if p.Offset() != 0 {
		t.Errorf("expected clamp to min extent 0, got %v", p.Offset())
	}
}

func TestScrollPosition_BouncingAllowsBoundedOverscroll(t *testing.T) {
	p := NewScrollPosition(nil, BouncingScrollPhysics{}, nil)
	p.SetExtents(0, 500)

	// Without a measured viewport the overscroll limit is
	// Clamp(600*0.35, 80, 220) = 210.
	p.SetOffset(900)
	if p.Offset() != 710 {
		t.Errorf("expected overscroll capped at 710, got %v", p.Offset())
	}

	p.SetOffset(-800)
	if p.Offset() != -210 {
		t.Errorf("expected overscroll capped at -210, got %v", p.Offset())
	}
}

func TestScrollPosition_SetExtentsReclampsOffset(t *testing.T) {
	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 500)
	p.SetOffset(500)

	// Content shrank; the held offset must follow the new max.
	p.SetExtents(0, 300)
	if p.Offset() != 300 {
		t.Errorf("expected offset reclamped to 300, got %v", p.Offset())
	}

	// An inverted range collapses to min.
	p.SetExtents(100, 50)
	if p.Offset() != 100 {
		t.Errorf("expected collapsed extents to pin offset at 100, got %v", p.Offset())
	}
}

func TestScrollController_JumpToMovesAttachedPositions(t *testing.T) {
	controller := &ScrollController{}
	first := NewScrollPosition(controller, ClampingScrollPhysics{}, nil)
	second := NewScrollPosition(controller, ClampingScrollPhysics{}, nil)
	first.SetExtents(0, 1000)
	second.SetExtents(0, 1000)

	notified := 0
	controller.AddListener(func() { notified++ })

	controller.JumpTo(120)

	if first.Offset() != 120 || second.Offset() != 120 {
		t.Errorf("expected both positions at 120, got %v and %v", first.Offset(), second.Offset())
	}
	if notified == 0 {
		t.Error("expected controller listeners to be notified")
	}
	if controller.Offset() != 120 {
		t.Errorf("expected controller to report 120, got %v", controller.Offset())
	}
}

func TestScrollController_ListenerRemoval(t *testing.T) {
	controller := &ScrollController{}
	notified := 0
	remove := controller.AddListener(func() { notified++ })

	remove()
	controller.JumpTo(50)

	if notified != 0 {
		t.Errorf("expected no notifications after removal, got %d", notified)
	}
}

func TestScrollController_OffsetWithoutPositions(t *testing.T) {
	controller := &ScrollController{InitialScrollOffset: 40}
	if controller.Offset() != 40 {
		t.Errorf("expected initial offset 40, got %v", controller.Offset())
	}

	notified := 0
	controller.AddListener(func() { notified++ })
	controller.JumpTo(75)

	if controller.Offset() != 75 {
		t.Errorf("expected offset 75 after JumpTo, got %v", controller.Offset())
	}
	if notified != 1 {
		t.Errorf("expected one notification, got %d", notified)
	}
}

func TestScrollController_SetViewportExtentDedups(t *testing.T) {
	controller := &ScrollController{}
	notified := 0
	controller.AddListener(func() { notified++ })

	controller.SetViewportExtent(480)
	controller.SetViewportExtent(480)

	if controller.ViewportExtent() != 480 {
		t.Errorf("expected viewport extent 480, got %v", controller.ViewportExtent())
	}
	if notified != 1 {
		t.Errorf("expected one notification for one change, got %d", notified)
	}
}

func TestApplyUserOffset_ClampingStopsAtEdges(t *testing.T) {
	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 500)
	p.SetOffset(500)

	p.ApplyUserOffset(60)
	if p.Offset() != 500 {
		t.Errorf("expected drag past max to stop at 500, got %v", p.Offset())
	}

	p.ApplyUserOffset(-60)
	if p.Offset() != 440 {
		t.Errorf("expected inward drag to move to 440, got %v", p.Offset())
	}
}

func TestApplyUserOffset_BouncingResistsProgressively(t *testing.T) {
	p := NewScrollPosition(nil, BouncingScrollPhysics{}, nil)
	p.SetExtents(0, 500)
	p.SetOffset(500)

	p.ApplyUserOffset(50)
	firstDelta := p.Offset() - 500
	if firstDelta <= 0 {
		t.Fatalf("expected the first overscroll drag to move outward, got delta %v", firstDelta)
	}

	before := p.Offset()
	p.ApplyUserOffset(50)
	secondDelta := p.Offset() - before

	if secondDelta <= 0 {
		t.Fatalf("expected the second drag to still move outward, got delta %v", secondDelta)
	}
	if secondDelta >= firstDelta {
		t.Errorf("expected resistance to grow with overscroll: first %v, second %v", firstDelta, secondDelta)
	}
}

func TestApplyUserOffset_StopsActiveFling(t *testing.T) {
	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 100000)
	p.StartBallistic(1000)
	defer p.StopBallistic()

	if !p.IsBallisticActive() {
		t.Fatal("expected fling to be active")
	}

	p.ApplyUserOffset(5)
	if p.IsBallisticActive() {
		t.Error("expected user drag to stop the fling")
	}
}

func TestStartBallistic_IgnoresTinyVelocity(t *testing.T) {
	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 1000)

	p.StartBallistic(4)
	if p.IsBallisticActive() {
		t.Error("expected velocity below threshold to start nothing")
	}

	p.StartBallistic(math.NaN())
	if p.IsBallisticActive() {
		t.Error("expected NaN velocity to start nothing")
	}
}

func TestStartBallistic_ClampsExtremeVelocity(t *testing.T) {
	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 1000000)
	p.StartBallistic(100000)
	defer p.StopBallistic()

	// Without a measured viewport the cap is Clamp(600*5.4, 1080, 4500).
	if p.ballistic == nil || p.ballistic.velocity != 3240 {
		t.Fatalf("expected launch velocity clamped to 3240, got %+v", p.ballistic)
	}
}

func TestStepBallistics_FlingDeceleratesToRest(t *testing.T) {
	clk := rectest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	p := NewScrollPosition(nil, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 100000)
	p.StartBallistic(1000)

	for frame := 0; frame < 500 && p.IsBallisticActive(); frame++ {
		clk.Advance(16 * time.Millisecond)
		StepBallistics()
	}

	if p.IsBallisticActive() {
		t.Fatal("expected fling to come to rest within the frame budget")
	}
	if p.Offset() <= 0 {
		t.Errorf("expected fling to travel forward, got offset %v", p.Offset())
	}
	if p.Offset() > 100000 {
		t.Errorf("expected offset within extents, got %v", p.Offset())
	}
}

func TestStepBallistics_NotifiesControllerEachFrame(t *testing.T) {
	clk := rectest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	controller := &ScrollController{}
	p := NewScrollPosition(controller, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 100000)

	notified := 0
	controller.AddListener(func() { notified++ })

	p.StartBallistic(1000)
	defer p.StopBallistic()
	launchNotifications := notified

	for frame := 0; frame < 3; frame++ {
		clk.Advance(16 * time.Millisecond)
		StepBallistics()
	}

	if notified < launchNotifications+3 {
		t.Errorf("expected a notification per stepped frame, got %d total", notified)
	}
}

func TestStepBallistics_BounceSpringsBackInsideExtents(t *testing.T) {
	clk := rectest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	p := NewScrollPosition(nil, BouncingScrollPhysics{}, nil)
	p.SetExtents(0, 500)
	p.SetOffset(490)
	p.StartBallistic(3000)

	for frame := 0; frame < 1000 && p.IsBallisticActive(); frame++ {
		clk.Advance(16 * time.Millisecond)
		StepBallistics()
	}

	if p.IsBallisticActive() {
		t.Fatal("expected bounce to settle within the frame budget")
	}
	if p.Offset() != 500 {
		t.Errorf("expected spring to settle exactly on the max extent, got %v", p.Offset())
	}
}

func TestStartBallistic_OverscrolledSpringsBackAtZeroVelocity(t *testing.T) {
	clk := rectest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	p := NewScrollPosition(nil, BouncingScrollPhysics{}, nil)
	p.SetExtents(0, 500)
	p.SetOffset(650)

	p.StartBallistic(0)
	if !p.IsBallisticActive() {
		t.Fatal("expected an overscrolled release to start a spring-back")
	}

	for frame := 0; frame < 1000 && p.IsBallisticActive(); frame++ {
		clk.Advance(16 * time.Millisecond)
		StepBallistics()
	}

	if p.Offset() != 500 {
		t.Errorf("expected spring-back to the max extent, got %v", p.Offset())
	}
}

func TestScrollPosition_DisposeDetachesFromController(t *testing.T) {
	controller := &ScrollController{}
	p := NewScrollPosition(controller, ClampingScrollPhysics{}, nil)
	p.SetExtents(0, 1000)
	p.StartBallistic(1000)

	p.Dispose()

	if p.IsBallisticActive() {
		t.Error("expected Dispose to stop the fling")
	}
	if HasActiveBallistics() {
		t.Error("expected no registered simulations after Dispose")
	}

	controller.JumpTo(99)
	if p.Offset() != 0 {
		t.Errorf("expected detached position to stay put, got %v", p.Offset())
	}
	if controller.Offset() != 99 {
		t.Errorf("expected controller to fall back to its own offset, got %v", controller.Offset())
	}
}
