package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"
)

var _ output.CompletionPort = (*Client)(nil)

type Config struct {
	Temperature float32
	// MaxTokens caps each completion. Zero leaves it to the endpoint.
	MaxTokens int
	// MaxRetries is the number of extra attempts after the first one fails.
	MaxRetries int
}

func DefaultConfig() Config {
	return Config{
		Temperature: 0.7,
		MaxRetries:  1,
	}
}

type Client struct {
	llm    output.LLMPort
	cfg    Config
	logger output.LoggerPort
}

func New(llm output.LLMPort, cfg Config, logger output.LoggerPort) *Client {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &Client{llm: llm, cfg: cfg, logger: logger}
}

// Complete sends the whole request up to 1+MaxRetries times, without backoff.
// Only transient failures are retried. The result of a failed request is a
// *entity.CompletionError.
func (c *Client) Complete(ctx context.Context, req output.CompletionRequest) (entity.Decision, error) {
	chatReq := output.ChatRequest{
		Messages:    BuildMessages(req.SystemPrompt, req.Transcript, req.Instruction),
		Tools:       req.Tools,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	attempts := 1 + c.cfg.MaxRetries
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			return entity.Decision{}, &entity.CompletionError{Attempts: attempt - 1, Err: lastErr}
		}

		resp, err := c.llm.Chat(ctx, chatReq)
		if err == nil {
			return c.toDecision(resp.Message, len(req.Transcript)), nil
		}

		lastErr = err
		if !retryable(err) {
			c.logger.Warn("Completion failed, not retrying", "attempt", attempt, "error", err)
			return entity.Decision{}, &entity.CompletionError{Attempts: attempt, Err: err}
		}
		c.logger.Warn("Completion attempt failed", "attempt", attempt, "maxAttempts", attempts, "error", err)
	}

	return entity.Decision{}, &entity.CompletionError{Attempts: attempts, Err: lastErr}
}

// retryable treats errors without an HTTP status classification, such as an
// empty choices list, as transient.
func retryable(err error) bool {
	var chatErr *output.ChatError
	if errors.As(err, &chatErr) {
		return chatErr.Retryable()
	}
	return true
}

func (c *Client) toDecision(msg entity.Message, step int) entity.Decision {
	if len(msg.ToolCalls) == 0 {
		return entity.Answer(strings.TrimSpace(msg.Content))
	}

	if len(msg.ToolCalls) > 1 {
		c.logger.Debug("Dropping parallel tool calls", "kept", msg.ToolCalls[0].Name, "dropped", len(msg.ToolCalls)-1)
	}

	tc := msg.ToolCalls[0]
	id := tc.ID
	if id == "" {
		id = fmt.Sprintf("call_%d", step)
	}
	return entity.CallTool(id, entity.ToolName(tc.Name), DecodeInput(tc.Arguments))
}

// BuildMessages lays a transcript out as chat messages after the system
// prompt.
func BuildMessages(systemPrompt string, transcript entity.Transcript, instruction string) []entity.Message {
	messages := make([]entity.Message, 0, len(transcript)+2)
	if systemPrompt != "" {
		messages = append(messages, entity.Message{Role: entity.RoleSystem, Content: systemPrompt})
	}

	for _, e := range transcript {
		switch e.Kind {
		case entity.EntryUserMessage:
			messages = append(messages, entity.Message{Role: entity.RoleUser, Content: e.Text})
		case entity.EntryToolCall:
			messages = append(messages, entity.Message{
				Role: entity.RoleAssistant,
				ToolCalls: []entity.ToolCall{{
					ID:        e.CallID,
					Name:      e.ToolName.String(),
					Arguments: EncodeInput(e.Input),
				}},
			})
		case entity.EntryToolResult:
			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: e.CallID,
				Name:       e.ToolName.String(),
				Content:    e.Output,
			})
		case entity.EntryFinalAnswer:
			messages = append(messages, entity.Message{Role: entity.RoleAssistant, Content: e.Text})
		}
	}

	if instruction != "" {
		messages = append(messages, entity.Message{Role: entity.RoleUser, Content: instruction})
	}
	return messages
}

type toolArguments struct {
	Input *string `json:"input"`
}

// DecodeInput extracts the "input" field of a tool call's JSON arguments.
// Anything else is passed through as is.
func DecodeInput(arguments string) string {
	var args toolArguments
	if err := json.Unmarshal([]byte(arguments), &args); err != nil || args.Input == nil {
		return arguments
	}
	return *args.Input
}

func EncodeInput(input string) string {
	data, _ := json.Marshal(map[string]string{"input": input})
	return string(data)
}
