// Package testing provides deterministic fixtures for recycler tests.
//
// # Quick Start
//
// Stand in for the UI-thread queue with a [FakeQueue], script what the
// layout reports with a [ScriptedLayout], and pump deferred work
// explicitly:
//
//	func TestDataChange(t *testing.T) {
//	    layout := rectest.NewScriptedLayout()
//	    queue := rectest.NewFakeQueue()
//	    tracker := viewport.NewTracker(0, 9, layout, queue)
//
//	    layout.Set(0, 9, 0, 9, 50)
//	    tracker.MarkDataChanged(true)
//	    queue.PumpAll()
//
//	    // The coalesced re-evaluation has run; assert on tracker.Snapshot().
//	}
//
// # Time Control
//
// Scroll physics read time through the animation package's clock.
// Install a [FakeClock] for deterministic fling tests:
//
//	clk := rectest.NewFakeClock()
//	prev := animation.SetClock(clk)
//	defer animation.SetClock(prev)
//	clk.Advance(16 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rectest "github.com/go-drift/recycler/pkg/testing"
package testing
