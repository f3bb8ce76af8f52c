package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/recycler/pkg/recycler"
)

// item is one demo row: a stable identity plus a mutable label.
type item struct {
	ID    string
	Label string
}

// itemList is the demo's backing data set. Mutations happen here first;
// the model then reports them to the binder.
type itemList struct {
	items []item
}

var _ recycler.Adapter = (*itemList)(nil)

func newItemList(n int) *itemList {
	l := &itemList{items: make([]item, 0, n)}
	for i := 0; i < n; i++ {
		l.items = append(l.items, item{ID: uuid.NewString(), Label: fmt.Sprintf("Row %d", i)})
	}
	return l
}

func (l *itemList) ItemCount() int {
	return len(l.items)
}

func (l *itemList) at(i int) item {
	return l.items[i]
}

func (l *itemList) insertAt(pos int, label string) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.items) {
		pos = len(l.items)
	}
	if label == "" {
		label = "Row " + uuid.NewString()[:8]
	}
	l.items = append(l.items, item{})
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = item{ID: uuid.NewString(), Label: label}
	return pos
}

func (l *itemList) removeAt(pos int) bool {
	if pos < 0 || pos >= len(l.items) {
		return false
	}
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	return true
}

func (l *itemList) move(from, to int) bool {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) || from == to {
		return false
	}
	moved := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items, item{})
	copy(l.items[to+1:], l.items[to:])
	l.items[to] = moved
	return true
}

func (l *itemList) relabel(pos int) bool {
	if pos < 0 || pos >= len(l.items) {
		return false
	}
	l.items[pos].Label += " *"
	return true
}

// regenerate replaces every identity while keeping labels, simulating a
// full refresh from a backing store.
func (l *itemList) regenerate() {
	for i := range l.items {
		l.items[i].ID = uuid.NewString()
	}
}
