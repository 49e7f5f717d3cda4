package ask

import (
	"context"
	"strings"

	"agentoid/internal/application/port/input"
	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"
)

const emptyQuestionReason = "Please enter a question first."

var _ input.Asker = (*UseCase)(nil)

// UseCase guards the agent loop for the presentation shells. When the agent
// could not be built, initErr is returned for every question.
type UseCase struct {
	executor     input.AgentExecutor
	systemPrompt string
	initErr      error
	logger       output.LoggerPort
}

func New(executor input.AgentExecutor, systemPrompt string, logger output.LoggerPort) *UseCase {
	return &UseCase{
		executor:     executor,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Unavailable returns an Asker that reports err for every non-empty question.
func Unavailable(err error, logger output.LoggerPort) *UseCase {
	return &UseCase{initErr: err, logger: logger}
}

func (uc *UseCase) Ask(ctx context.Context, question string) (*entity.AgentResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &entity.UserInputError{Reason: emptyQuestionReason}
	}

	if uc.initErr != nil {
		return nil, uc.initErr
	}

	uc.logger.Info("Question received", "question", question)

	resp, err := uc.executor.Execute(ctx, entity.AgentRequest{
		UserInput:    question,
		SystemPrompt: uc.systemPrompt,
	})
	if err != nil {
		uc.logger.Error("Question failed", "error", err)
		return nil, err
	}

	uc.logger.Info("Question answered",
		"requestID", resp.RequestID,
		"steps", resp.Steps,
		"toolCalls", len(resp.Transcript.ToolCalls("")),
	)
	return resp, nil
}
