package userinteraction

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.ProgressPort = (*ConsoleProgress)(nil)

// ConsoleProgress prints the agent loop trace, one block per step and tool.
type ConsoleProgress struct {
	out io.Writer
}

func NewConsoleProgress(out io.Writer) *ConsoleProgress {
	return &ConsoleProgress{out: out}
}

func (p *ConsoleProgress) ShowStep(ctx context.Context, step, maxSteps int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(p.out, "\n━━━ Step %d/%d ━━━\n", step, maxSteps)
}

func (p *ConsoleProgress) ShowToolStart(ctx context.Context, toolName, input string) {
	icon, name := toolDisplay(toolName)

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(p.out, "%s %s\n", icon, name)

	if input != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(p.out, "   Input: %s\n", truncate(input, 80))
	}
}

func (p *ConsoleProgress) ShowToolResult(ctx context.Context, toolName, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Fprint(p.out, "✗ ")

		dim := color.New(color.Faint)
		dim.Fprintln(p.out, truncate(result, 300))
		return
	}

	green := color.New(color.FgGreen)
	green.Fprintf(p.out, "✓ %s\n", summarizeResult(toolName, result))
}

func toolDisplay(toolName string) (string, string) {
	displays := map[entity.ToolName][2]string{
		entity.ToolSearch:  {"🔎", "DuckDuckGo"},
		entity.ToolLookup:  {"📚", "Wikipedia"},
		entity.ToolCompute: {"🧮", "Math solver"},
	}

	if display, ok := displays[entity.ToolName(toolName)]; ok {
		return display[0], display[1]
	}
	return "🔧", toolName
}

func summarizeResult(toolName, result string) string {
	switch entity.ToolName(toolName) {
	case entity.ToolCompute:
		return "Result: " + truncate(result, 100)

	case entity.ToolSearch, entity.ToolLookup:
		firstLine, _, _ := strings.Cut(result, "\n")
		return truncate(firstLine, 100)
	}

	return truncate(result, 100)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	return s[:maxLen] + "..."
}
