package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/hydroprops/internal/snapshot"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

func renderMetadata(meta *snapshot.Metadata) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(meta.ID))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(meta.Timestamp.Format("2006-01-02 15:04:05")))

	for _, g := range meta.Groups {
		b.WriteString("\n\n")
		b.WriteString(groupStyle.Render(g.Name))

		width := 0
		for _, a := range g.Attributes {
			width = max(width, len(a.Name))
		}
		for _, a := range g.Attributes {
			b.WriteString("\n  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, a.Name)))
			b.WriteString("  ")
			b.WriteString(valueStyle.Render(formatAttribute(a)))
		}
	}

	return panelStyle.Render(b.String())
}

func formatAttribute(a snapshot.Attribute) string {
	switch a.Type {
	case snapshot.TypeInt:
		return fmt.Sprintf("%d", a.Int)
	case snapshot.TypeString:
		return a.String
	default:
		return fmt.Sprintf("%g", a.Value)
	}
}
