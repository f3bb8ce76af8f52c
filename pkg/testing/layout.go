package testing

import "github.com/go-drift/recycler/pkg/viewport"

// ScriptedLayout is a viewport.LayoutInfo whose answers are plain
// fields. Tests mutate the fields (or call Set) between tracker
// evaluations to script what the layout reports next.
type ScriptedLayout struct {
	First      int
	Last       int
	FirstFully int
	LastFully  int
	Count      int
}

var _ viewport.LayoutInfo = (*ScriptedLayout)(nil)

// NewScriptedLayout returns a layout reporting no visible positions,
// matching a list that has not been measured yet.
func NewScriptedLayout() *ScriptedLayout {
	return &ScriptedLayout{
		First:      viewport.NoPosition,
		Last:       viewport.NoPosition,
		FirstFully: viewport.NoPosition,
		LastFully:  viewport.NoPosition,
	}
}

// Set replaces all five answers at once.
func (l *ScriptedLayout) Set(first, last, firstFully, lastFully, count int) {
	l.First = first
	l.Last = last
	l.FirstFully = firstFully
	l.LastFully = lastFully
	l.Count = count
}

func (l *ScriptedLayout) FirstVisibleIndex() int      { return l.First }
func (l *ScriptedLayout) LastVisibleIndex() int       { return l.Last }
func (l *ScriptedLayout) FirstFullyVisibleIndex() int { return l.FirstFully }
func (l *ScriptedLayout) LastFullyVisibleIndex() int  { return l.LastFully }
func (l *ScriptedLayout) ItemCount() int              { return l.Count }
