package tool

import (
	"context"
	"net/url"
	"strings"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"

	"github.com/tmc/langchaingo/tools"
)

const DefaultWikipediaBaseURL = "https://en.wikipedia.org"

var _ output.ToolPort = (*LookupTool)(nil)

// LookupTool exposes a langchaingo encyclopedia tool under the registry's
// name and description. The langchaingo tool returns bare extracts, so a
// source link for the topic is appended to every result.
type LookupTool struct {
	inner   tools.Tool
	baseURL string
	logger  output.LoggerPort
}

func NewLookupTool(inner tools.Tool, logger output.LoggerPort) *LookupTool {
	return &LookupTool{inner: inner, baseURL: DefaultWikipediaBaseURL, logger: logger}
}

func (t *LookupTool) Name() entity.ToolName { return entity.ToolLookup }

func (t *LookupTool) Description() string {
	return "Useful for when you need to get factual info, even if a bit outdated sometimes. Input is a topic or entity name. Cite the source link it returns."
}

func (t *LookupTool) Invoke(ctx context.Context, input string) (string, error) {
	topic := strings.TrimSpace(input)
	if topic == "" {
		return "", entity.NewToolError(t.Name(), "topic is empty")
	}

	result, err := t.inner.Call(ctx, topic)
	if err != nil {
		return "", &entity.ToolError{Tool: t.Name(), Err: err}
	}
	t.logger.Debug("Lookup completed", "topic", topic, "resultLen", len(result))

	return strings.TrimSpace(result) + "\n\nSource: Wikipedia, " + t.SourceURL(topic), nil
}

// SourceURL links to the Wikipedia article for topic. The go=Go search jumps
// straight to the article when the title matches and lists candidates
// otherwise.
func (t *LookupTool) SourceURL(topic string) string {
	q := url.Values{}
	q.Set("search", topic)
	q.Set("title", "Special:Search")
	q.Set("go", "Go")
	return t.baseURL + "/w/index.php?" + q.Encode()
}
