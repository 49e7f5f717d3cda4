package output

import (
	"context"
	"net/http"

	"agentoid/internal/domain/entity"
)

type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Tools       []entity.ToolDefinition
	Temperature float32
	MaxTokens   int
}

type ChatResponse struct {
	Message entity.Message
}

// CompletionPort turns a system prompt and a transcript into the model's next
// decision.
type CompletionPort interface {
	Complete(ctx context.Context, req CompletionRequest) (entity.Decision, error)
}

type CompletionRequest struct {
	SystemPrompt string
	Transcript   entity.Transcript
	Tools        []entity.ToolDefinition
	// Instruction, when set, is sent after the transcript as a last user turn.
	Instruction string
}

// ChatError is an LLMPort failure with the endpoint's HTTP status. StatusCode
// is zero when no response was received.
type ChatError struct {
	StatusCode int
	Err        error
}

func (e *ChatError) Error() string {
	return e.Err.Error()
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

// Retryable reports whether sending the same request again may succeed:
// connection failures, 408, 409, 429 and 5xx.
func (e *ChatError) Retryable() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusRequestTimeout,
		e.StatusCode == http.StatusConflict,
		e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return e.StatusCode >= http.StatusInternalServerError
	}
}
