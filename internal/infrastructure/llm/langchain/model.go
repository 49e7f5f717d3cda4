// Package langchain builds the langchaingo pieces the agent uses: the LLM
// math chain on the inference endpoint, and the DuckDuckGo and Wikipedia
// tools.
package langchain

import (
	"context"
	"fmt"

	"agentoid/internal/application/port/output"
	"agentoid/internal/infrastructure/llm/groq"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// NewModel returns a langchaingo model bound to the endpoint described by cfg.
func NewModel(cfg groq.Config) (llms.Model, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithModel(cfg.Model),
		lcopenai.WithHTTPClient(groq.HTTPClient(cfg)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}

	model, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain model: %w", err)
	}
	return model, nil
}

var _ output.MathSolverPort = (*MathChain)(nil)

// MathChain asks the model to turn a word problem into an expression and
// evaluates it.
type MathChain struct {
	chain chains.LLMMathChain
}

func NewMathChain(model llms.Model) *MathChain {
	return &MathChain{chain: chains.NewLLMMathChain(model)}
}

func (m *MathChain) Solve(ctx context.Context, problem string) (string, error) {
	answer, err := chains.Run(ctx, m.chain, problem)
	if err != nil {
		return "", fmt.Errorf("math chain: %w", err)
	}
	return answer, nil
}
