package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/recycler/pkg/viewport"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	fullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cachedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("recyclerdemo"))
	b.WriteString("\n")
	b.WriteString(m.viewRows())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	if m.inputActive {
		b.WriteString("insert: " + m.input.View())
	} else {
		b.WriteString(helpStyle.Render("j/k scroll · pgup/pgdn page · g/G ends · f/b fling · i insert · e edit · x remove · m move · r reload · q quit"))
	}
	return b.String()
}

// viewRows renders the binder's window: visible items plus the cache
// margin. Markers show each item's visibility class.
func (m *model) viewRows() string {
	first, last := m.binder.VisibleWindow()
	if first == viewport.NoPosition {
		return cachedStyle.Render("waiting for first measure...")
	}
	snapshot := m.binder.Tracker().Snapshot()
	span := m.cfg.Columns
	var lines []string
	for rowStart := first - first%span; rowStart <= last; rowStart += span {
		var cells []string
		for i := rowStart; i < rowStart+span && i < m.items.ItemCount(); i++ {
			if i < first || i > last {
				continue
			}
			cells = append(cells, m.renderCell(i, snapshot))
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, "  "))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderCell(i int, snapshot viewport.Snapshot) string {
	it := m.items.at(i)
	text := fmt.Sprintf("%4d %s %s", i, it.ID[:8], it.Label)
	switch {
	case snapshot.FirstFullyVisible >= 0 && i >= snapshot.FirstFullyVisible && i <= snapshot.LastFullyVisible:
		return fullStyle.Render("● " + text)
	case i >= snapshot.FirstVisible && i <= snapshot.LastVisible:
		return partialStyle.Render("◐ " + text)
	default:
		return cachedStyle.Render("· " + text)
	}
}

func (m *model) viewStatus() string {
	tracker := m.binder.Tracker()
	line := fmt.Sprintf("offset %.0f · %s · last %s · dispatches %d",
		m.binder.Controller().Offset(), tracker.Snapshot(), m.lastReason, m.dispatches)
	if tracker.DataChangePending() {
		line += " · data-change pending"
	}
	if m.binder.Position().IsBallisticActive() {
		line += " · flinging"
	}
	if m.status != "" {
		line += " · " + m.status
	}
	return statusStyle.Render(line)
}
