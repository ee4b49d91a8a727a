package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"rumorlens/internal/core"
)

var (
	rumorBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			SetString("⚠ 疑似谣言")

	infoBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			SetString("ℹ 分析结果")

	graphHeaderStyle = lipgloss.NewStyle().Bold(true)
	graphTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderResult formats an analysis result for terminal output.
func renderResult(result core.AnalysisResult) string {
	var b strings.Builder

	if result.IsRumor {
		b.WriteString(rumorBadge.String())
	} else {
		b.WriteString(infoBadge.String())
	}
	b.WriteString("\n")
	b.WriteString(renderMarkdown(result.Message))

	if result.GraphData != nil {
		b.WriteString("\n")
		b.WriteString(renderGraph(result.GraphData))
	}

	return b.String()
}

// renderMarkdown renders the verdict Markdown for the terminal, falling back
// to the raw text when the renderer is unavailable.
func renderMarkdown(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

// renderGraph lists propagation nodes and edges as a compact table.
func renderGraph(g *core.GraphData) string {
	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}

	var b strings.Builder
	b.WriteString(graphHeaderStyle.Render("传播路径"))
	b.WriteString("\n")

	for _, n := range g.Nodes {
		b.WriteString(fmt.Sprintf("  %s [%s] %s\n",
			graphTimeStyle.Render(n.Time), groupName(n.Group), n.Label))
	}

	if len(g.Links) > 0 {
		b.WriteString("\n")
		for _, l := range g.Links {
			b.WriteString(fmt.Sprintf("  %s → %s (强度 %d)\n",
				labels[l.Source], labels[l.Target], l.Value))
		}
	}

	return b.String()
}

func groupName(group int) string {
	switch group {
	case core.GroupSource:
		return "源头"
	case core.GroupSpreader:
		return "传播"
	case core.GroupDebunker:
		return "辟谣"
	default:
		return "未知"
	}
}
