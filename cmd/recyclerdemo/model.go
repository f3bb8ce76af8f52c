package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/recycler/pkg/config"
	"github.com/go-drift/recycler/pkg/errors"
	"github.com/go-drift/recycler/pkg/recycler"
	"github.com/go-drift/recycler/pkg/scroll"
	"github.com/go-drift/recycler/pkg/trace"
	"github.com/go-drift/recycler/pkg/viewport"
)

// dispatchMsg carries a deferred tracker task into the update loop,
// where it runs on the single UI goroutine.
type dispatchMsg struct {
	task func()
}

type tickMsg time.Time

// flingSpeed is the ballistic start velocity for the f/b keys, in
// terminal lines per second.
const flingSpeed = 800.0

type model struct {
	cfg      *config.Resolved
	items    *itemList
	layout   viewport.LayoutInfo
	binder   *recycler.Binder
	recorder *trace.Recorder // nil when tracing is off

	input       textinput.Model
	inputActive bool

	width      int
	height     int
	status     string
	lastReason viewport.Reason
	dispatches int
}

var _ viewport.Listener = (*model)(nil)

func newModel(cfg *config.Resolved, items *itemList, layout viewport.LayoutInfo, binder *recycler.Binder, recorder *trace.Recorder) *model {
	input := textinput.New()
	input.Placeholder = "label (empty picks a random one)"
	input.CharLimit = 64

	m := &model{
		cfg:      cfg,
		items:    items,
		layout:   layout,
		binder:   binder,
		recorder: recorder,
		input:    input,
	}
	binder.Tracker().AddListener(m)
	return m
}

// OnViewportChanged surfaces the latest dispatch in the status bar.
func (m *model) OnViewportChanged(first, last, firstFully, lastFully int, reason viewport.Reason) {
	m.lastReason = reason
	m.dispatches++
}

func (m *model) Init() tea.Cmd {
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update seeds its named return first so a recovered panic hands the
// unchanged model back to the program instead of a nil interface.
func (m *model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	next = m
	defer errors.Recover("recyclerdemo.Update")

	switch msg := msg.(type) {
	case dispatchMsg:
		if msg.task != nil {
			msg.task()
		}
		return m, nil

	case tickMsg:
		scroll.StepBallistics()
		if m.recorder != nil {
			m.recorder.RecordScroll(m.binder.Controller().Offset())
		}
		if scroll.HasActiveBallistics() {
			return m, tickCmd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Extents are measured in terminal lines; the item extent says
		// how many of them one item occupies.
		m.binder.SetViewportExtent(float64(m.listHeight()))
		return m, nil

	case tea.KeyMsg:
		if m.inputActive {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// listHeight is the terminal rows left for list content after the
// title, status and help lines.
func (m *model) listHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	position := m.binder.Position()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		position.ApplyUserOffset(m.cfg.ItemExtent)
	case "k", "up":
		position.ApplyUserOffset(-m.cfg.ItemExtent)
	case "pgdown", " ":
		position.ApplyUserOffset(m.binder.Controller().ViewportExtent())
	case "pgup":
		position.ApplyUserOffset(-m.binder.Controller().ViewportExtent())
	case "g", "home":
		m.binder.Controller().JumpTo(0)
	case "G", "end":
		position.SetOffset(m.maxScroll())

	case "f":
		position.StartBallistic(flingSpeed)
		return m, tickCmd()
	case "b":
		position.StartBallistic(-flingSpeed)
		return m, tickCmd()

	case "i":
		m.inputActive = true
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		m.editTopItem()
	case "x":
		m.removeTopItem()
	case "m":
		m.moveTopItem()
	case "r":
		m.reload()
	}
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		label := strings.TrimSpace(m.input.Value())
		m.inputActive = false
		m.input.Blur()
		m.insertItem(label)
		return m, nil
	case "esc":
		m.inputActive = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) maxScroll() float64 {
	measurer, ok := m.layout.(recycler.ContentMeasurer)
	if !ok {
		return 0
	}
	max := measurer.ContentExtent() - m.binder.Controller().ViewportExtent()
	if max < 0 {
		max = 0
	}
	return max
}

// insertItem places a new row just below the first visible one, so the
// mutation lands inside the tracked range.
func (m *model) insertItem(label string) {
	pos := m.binder.Tracker().Snapshot().FirstVisible + 1
	if pos < 0 {
		pos = 0
	}
	if pos > m.items.ItemCount() {
		pos = m.items.ItemCount()
	}
	pos = m.items.insertAt(pos, label)
	m.binder.NotifyItemRangeInserted(pos, 1)
	m.status = fmt.Sprintf("inserted %q at %d", m.items.at(pos).Label, pos)
}

func (m *model) editTopItem() {
	snapshot := m.binder.Tracker().Snapshot()
	pos := snapshot.FirstFullyVisible
	if pos < 0 {
		pos = snapshot.FirstVisible
	}
	if !m.items.relabel(pos) {
		return
	}
	m.binder.NotifyItemRangeUpdated(pos, 1)
	m.status = fmt.Sprintf("relabeled %d", pos)
}

func (m *model) removeTopItem() {
	pos := m.binder.Tracker().Snapshot().FirstVisible
	if !m.items.removeAt(pos) {
		return
	}
	m.binder.NotifyItemRangeRemoved(pos, 1)
	m.status = fmt.Sprintf("removed %d", pos)
}

func (m *model) moveTopItem() {
	from := m.binder.Tracker().Snapshot().FirstVisible
	to := from + 10
	if to > m.items.ItemCount()-1 {
		to = m.items.ItemCount() - 1
	}
	if !m.items.move(from, to) {
		return
	}
	m.binder.NotifyItemMoved(from, to)
	m.status = fmt.Sprintf("moved %d to %d", from, to)
}

func (m *model) reload() {
	m.items.regenerate()
	m.binder.NotifyDataSetChanged()
	if m.recorder != nil {
		m.recorder.Mark("reload")
	}
	m.status = "reloaded, all identities regenerated"
}
