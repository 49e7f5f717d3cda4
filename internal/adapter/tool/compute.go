package tool

import (
	"context"
	"errors"
	"strings"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
)

// maxEvalSteps bounds one expression. Arithmetic the model sends stays far
// below it.
const maxEvalSteps = 1_000_000

var errTooManySteps = errors.New("expression exceeds the evaluation step limit")

var _ output.ToolPort = (*ComputeTool)(nil)

type ComputeTool struct {
	solver   output.MathSolverPort
	logger   output.LoggerPort
	maxSteps uint64
}

// NewComputeTool evaluates plain expressions directly. solver, when not nil,
// handles inputs the expression evaluator rejects.
func NewComputeTool(solver output.MathSolverPort, logger output.LoggerPort) *ComputeTool {
	return &ComputeTool{solver: solver, logger: logger, maxSteps: maxEvalSteps}
}

func (t *ComputeTool) Name() entity.ToolName { return entity.ToolCompute }

func (t *ComputeTool) Description() string {
	return "Useful for when you need to answer math questions. This tool is only for math questions and nothing else. Only input math expressions."
}

func (t *ComputeTool) Invoke(ctx context.Context, input string) (string, error) {
	expr := strings.TrimSpace(input)
	if expr == "" {
		return "", entity.NewToolError(t.Name(), "expression is empty")
	}
	if err := ctx.Err(); err != nil {
		return "", &entity.ToolError{Tool: t.Name(), Err: err}
	}

	result, err := t.evaluate(ctx, expr)
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", &entity.ToolError{Tool: t.Name(), Err: ctxErr}
	}
	if errors.Is(err, errTooManySteps) {
		return "", &entity.ToolError{Tool: t.Name(), Err: err}
	}

	if t.solver == nil {
		return "", entity.NewToolError(t.Name(), "cannot evaluate %q: %v", expr, err)
	}

	t.logger.Debug("Expression rejected, asking math chain", "expression", expr, "reason", err)

	answer, err := t.solver.Solve(ctx, expr)
	if err != nil {
		return "", &entity.ToolError{Tool: t.Name(), Err: err}
	}
	return strings.TrimSpace(answer), nil
}

// evaluate runs expr as a Starlark expression with the math module in scope.
// The thread is cancelled when ctx is done.
func (t *ComputeTool) evaluate(ctx context.Context, expr string) (string, error) {
	thread := &starlark.Thread{Name: "math_solver"}
	thread.SetMaxExecutionSteps(t.maxSteps)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	v, err := starlark.Eval(thread, "input", expr, starlarkmath.Module.Members)
	if err != nil {
		if thread.ExecutionSteps() >= t.maxSteps {
			return "", errTooManySteps
		}
		return "", err
	}
	return v.String(), nil
}
