package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/streamtrace/internal/tracer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	statusStyles = map[tracer.Status]lipgloss.Style{
		tracer.RanOutOfSteps: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00")),
		tracer.OutOfBounds:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")),
		tracer.NonFinite:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true),
	}
)

func row(label string, value any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
}

func statusRow(s tracer.Status, n int) string {
	st, ok := statusStyles[s]
	if !ok {
		st = valueStyle
	}
	return labelStyle.Render(s.String()) + st.Render(fmt.Sprint(n))
}
