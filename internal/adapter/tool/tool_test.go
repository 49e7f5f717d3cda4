package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agentoid/internal/domain/entity"
	"agentoid/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLangchainTool struct {
	output string
	err    error
	input  string
}

func (f *fakeLangchainTool) Name() string        { return "fake" }
func (f *fakeLangchainTool) Description() string { return "fake" }
func (f *fakeLangchainTool) Call(_ context.Context, input string) (string, error) {
	f.input = input
	return f.output, f.err
}

type fakeSolver struct {
	answer  string
	err     error
	problem string
}

func (f *fakeSolver) Solve(_ context.Context, problem string) (string, error) {
	f.problem = problem
	return f.answer, f.err
}

func TestSearchTool_PassesResultsThrough(t *testing.T) {
	results := "Title: Go\nDescription: Build simple, secure, scalable systems.\nURL: https://go.dev/\n\n"
	inner := &fakeLangchainTool{output: results}
	tool := NewSearchTool(inner, logger.NewNop())

	assert.Equal(t, entity.ToolSearch, tool.Name())

	out, err := tool.Invoke(context.Background(), "  golang release  ")
	require.NoError(t, err)
	assert.Equal(t, "golang release", inner.input)
	assert.Equal(t, strings.TrimSpace(results), out)
}

func TestSearchTool_NoResults(t *testing.T) {
	tool := NewSearchTool(&fakeLangchainTool{output: "  "}, logger.NewNop())

	out, err := tool.Invoke(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Equal(t, noSearchResult, out)
}

func TestSearchTool_Errors(t *testing.T) {
	tool := NewSearchTool(&fakeLangchainTool{err: errors.New("403")}, logger.NewNop())

	_, err := tool.Invoke(context.Background(), " ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrTool))

	_, err = tool.Invoke(context.Background(), "golang")
	require.Error(t, err)
	var toolErr *entity.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, entity.ToolSearch, toolErr.Tool)
	assert.Contains(t, err.Error(), "403")
}

func TestLookupTool_AppendsSourceLink(t *testing.T) {
	// The wikipedia tool returns bare page extracts with no title or URL.
	inner := &fakeLangchainTool{output: "France, officially the French Republic, is a country in Western Europe. Its capital is Paris."}
	tool := NewLookupTool(inner, logger.NewNop())

	assert.Equal(t, entity.ToolLookup, tool.Name())

	out, err := tool.Invoke(context.Background(), " capital of France ")
	require.NoError(t, err)
	assert.Equal(t, "capital of France", inner.input)
	assert.True(t, strings.HasPrefix(out, "France, officially the French Republic"))
	assert.True(t, strings.HasSuffix(out,
		"Source: Wikipedia, https://en.wikipedia.org/w/index.php?go=Go&search=capital+of+France&title=Special%3ASearch"))
}

func TestLookupTool_Errors(t *testing.T) {
	tool := NewLookupTool(&fakeLangchainTool{err: errors.New("timeout")}, logger.NewNop())

	_, err := tool.Invoke(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic is empty")

	_, err = tool.Invoke(context.Background(), "France")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrTool))
}

func TestComputeTool_EvaluatesExpression(t *testing.T) {
	solver := &fakeSolver{answer: "unused"}
	tool := NewComputeTool(solver, logger.NewNop())

	out, err := tool.Invoke(context.Background(), "2+2")
	require.NoError(t, err)
	assert.Equal(t, "4", out)

	out, err = tool.Invoke(context.Background(), "sqrt(16)")
	require.NoError(t, err)
	assert.Equal(t, "4.0", out)
	assert.Empty(t, solver.problem)
}

func TestComputeTool_FallsBackToSolver(t *testing.T) {
	solver := &fakeSolver{answer: " 42 "}
	tool := NewComputeTool(solver, logger.NewNop())

	out, err := tool.Invoke(context.Background(), "what is six times seven")
	require.NoError(t, err)
	assert.Equal(t, "42", out)
	assert.Equal(t, "what is six times seven", solver.problem)
}

func TestComputeTool_Errors(t *testing.T) {
	tool := NewComputeTool(nil, logger.NewNop())

	_, err := tool.Invoke(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrTool))

	_, err = tool.Invoke(context.Background(), "six times seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot evaluate")

	failing := NewComputeTool(&fakeSolver{err: errors.New("bad format")}, logger.NewNop())
	_, err = failing.Invoke(context.Background(), "six times seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad format")
}

const runawayExpression = "len([i*i for i in range(30000000)])"

func TestComputeTool_StepLimit(t *testing.T) {
	solver := &fakeSolver{answer: "unused"}
	tool := NewComputeTool(solver, logger.NewNop())

	start := time.Now()
	_, err := tool.Invoke(context.Background(), runawayExpression)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrTool))
	assert.True(t, errors.Is(err, errTooManySteps))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Empty(t, solver.problem, "a runaway expression must not reach the math chain")
}

func TestComputeTool_StopsOnContextDone(t *testing.T) {
	tool := NewComputeTool(nil, logger.NewNop())
	tool.maxSteps = 1 << 62

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := tool.Invoke(ctx, runawayExpression)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 5*time.Second)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	_, err = tool.Invoke(cancelled, "2+2")
	assert.True(t, errors.Is(err, context.Canceled))
}
