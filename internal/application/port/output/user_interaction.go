package output

import "context"

// ProgressPort receives the agent loop's trace while a request runs.
type ProgressPort interface {
	ShowStep(ctx context.Context, step, maxSteps int)
	ShowToolStart(ctx context.Context, toolName, input string)
	ShowToolResult(ctx context.Context, toolName, result string, isError bool)
}

type NopProgress struct{}

func (NopProgress) ShowStep(context.Context, int, int)                   {}
func (NopProgress) ShowToolStart(context.Context, string, string)        {}
func (NopProgress) ShowToolResult(context.Context, string, string, bool) {}
