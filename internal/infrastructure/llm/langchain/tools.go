package langchain

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/tools"
	"github.com/tmc/langchaingo/tools/duckduckgo"
	"github.com/tmc/langchaingo/tools/wikipedia"
)

const (
	DefaultWikipediaTopK     = 3
	DefaultWikipediaMaxChars = 4000

	searchTimeout = 15 * time.Second
)

func NewWikipedia(userAgent string) tools.Tool {
	tool := wikipedia.New(userAgent)
	tool.TopK = DefaultWikipediaTopK
	tool.DocMaxChars = DefaultWikipediaMaxChars
	return tool
}

// NewDuckDuckGo returns the DuckDuckGo HTML search tool. Each search is
// bounded by its own HTTP timeout.
func NewDuckDuckGo(maxResults int, userAgent string) (tools.Tool, error) {
	tool, err := duckduckgo.New(maxResults, userAgent,
		duckduckgo.WithHTTPClient(&http.Client{Timeout: searchTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("create duckduckgo tool: %w", err)
	}
	return tool, nil
}
