package tool

import (
	"context"
	"strings"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"

	"github.com/tmc/langchaingo/tools"
)

const noSearchResult = "No good DuckDuckGo Search Result was found"

var _ output.ToolPort = (*SearchTool)(nil)

// SearchTool exposes a langchaingo web search tool under the registry's name
// and description.
type SearchTool struct {
	inner  tools.Tool
	logger output.LoggerPort
}

func NewSearchTool(inner tools.Tool, logger output.LoggerPort) *SearchTool {
	return &SearchTool{inner: inner, logger: logger}
}

func (t *SearchTool) Name() entity.ToolName { return entity.ToolSearch }

func (t *SearchTool) Description() string {
	return "Useful for when you need to answer questions about current events. Input is a web search query. Results include the page URL to cite."
}

func (t *SearchTool) Invoke(ctx context.Context, input string) (string, error) {
	query := strings.TrimSpace(input)
	if query == "" {
		return "", entity.NewToolError(t.Name(), "search query is empty")
	}

	result, err := t.inner.Call(ctx, query)
	if err != nil {
		return "", &entity.ToolError{Tool: t.Name(), Err: err}
	}
	t.logger.Debug("Search completed", "query", query, "resultLen", len(result))

	result = strings.TrimSpace(result)
	if result == "" {
		return noSearchResult, nil
	}
	return result, nil
}
