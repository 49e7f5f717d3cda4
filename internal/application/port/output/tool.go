package output

import (
	"context"

	"agentoid/internal/domain/entity"
)

type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Invoke(ctx context.Context, input string) (string, error)
}

type ToolRegistry interface {
	Register(tool ToolPort) error
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
	Dispatch(ctx context.Context, name entity.ToolName, input string) (string, error)
}

// MathSolverPort answers a math word problem that cannot be evaluated as a
// plain expression.
type MathSolverPort interface {
	Solve(ctx context.Context, problem string) (string, error)
}
