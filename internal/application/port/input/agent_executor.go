package input

import (
	"context"

	"agentoid/internal/domain/entity"
)

type AgentExecutor interface {
	Execute(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error)
}

// Asker is the presentation boundary: one question in, one response or error
// out.
type Asker interface {
	Ask(ctx context.Context, question string) (*entity.AgentResponse, error)
}
