package executor

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"agentoid/internal/application/port/input"
	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"

	"github.com/google/uuid"
)

var _ input.AgentExecutor = (*UseCase)(nil)

const (
	DefaultMaxSteps   = 15
	maxObservationLen = 20000
)

type Config struct {
	// MaxSteps bounds the number of completion requests that may call tools.
	MaxSteps int
	// ForceAnswerInstruction is sent once MaxSteps is reached, with tools
	// withheld, to obtain a final answer.
	ForceAnswerInstruction string
}

type UseCase struct {
	completion output.CompletionPort
	tools      output.ToolRegistry
	progress   output.ProgressPort
	logger     output.LoggerPort
	cfg        Config
}

func New(
	completion output.CompletionPort,
	tools output.ToolRegistry,
	progress output.ProgressPort,
	logger output.LoggerPort,
	cfg Config,
) *UseCase {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if progress == nil {
		progress = output.NopProgress{}
	}
	return &UseCase{
		completion: completion,
		tools:      tools,
		progress:   progress,
		logger:     logger,
		cfg:        cfg,
	}
}

// Execute runs AwaitingDecision -> ExecutingTool -> ... -> Done for one
// request. Tool failures go back to the model; completion failures abort.
func (uc *UseCase) Execute(ctx context.Context, req entity.AgentRequest) (*entity.AgentResponse, error) {
	requestID := uuid.NewString()
	log := uc.logger.WithField("requestID", requestID)

	transcript := entity.NewTranscript(req.UserInput)
	toolDefs := uc.tools.Definitions()

	for step := 1; step <= uc.cfg.MaxSteps; step++ {
		uc.progress.ShowStep(ctx, step, uc.cfg.MaxSteps)
		log.Debug("Starting step", "step", step)

		decision, err := uc.completion.Complete(ctx, output.CompletionRequest{
			SystemPrompt: req.SystemPrompt,
			Transcript:   transcript,
			Tools:        toolDefs,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		if decision.IsFinal() {
			transcript = transcript.Append(entity.FinalAnswer(decision.Text))
			return &entity.AgentResponse{
				RequestID:  requestID,
				Output:     decision.Text,
				Transcript: transcript,
				Steps:      step,
			}, nil
		}

		transcript = uc.executeTool(ctx, log, transcript, decision)
	}

	log.Info("Step limit reached, requesting final answer", "maxSteps", uc.cfg.MaxSteps)

	decision, err := uc.completion.Complete(ctx, output.CompletionRequest{
		SystemPrompt: req.SystemPrompt,
		Transcript:   transcript,
		Instruction:  uc.cfg.ForceAnswerInstruction,
	})
	if err != nil {
		return nil, fmt.Errorf("final answer request failed: %w", err)
	}
	if !decision.IsFinal() {
		return nil, fmt.Errorf("%w (%d steps)", entity.ErrStepLimit, uc.cfg.MaxSteps)
	}

	transcript = transcript.Append(entity.FinalAnswer(decision.Text))
	return &entity.AgentResponse{
		RequestID:  requestID,
		Output:     decision.Text,
		Transcript: transcript,
		Steps:      uc.cfg.MaxSteps + 1,
	}, nil
}

func (uc *UseCase) executeTool(ctx context.Context, log output.LoggerPort, transcript entity.Transcript, d entity.Decision) entity.Transcript {
	transcript = transcript.Append(entity.ToolCallEntry(d.CallID, d.ToolName, d.Input))
	uc.progress.ShowToolStart(ctx, d.ToolName.String(), d.Input)
	log.Info("Executing tool", "name", d.ToolName, "input", d.Input)

	result, err := uc.tools.Dispatch(ctx, d.ToolName, d.Input)
	if err != nil {
		var toolErr *entity.ToolError
		if !errors.As(err, &toolErr) {
			toolErr = &entity.ToolError{Tool: d.ToolName, Err: err}
		}
		log.Warn("Tool execution failed", "name", d.ToolName, "error", toolErr)

		observation := "Error: " + toolErr.Error()
		uc.progress.ShowToolResult(ctx, d.ToolName.String(), observation, true)
		return transcript.Append(entity.ToolResultEntry(d.CallID, d.ToolName, observation, true))
	}

	if len(result) > maxObservationLen {
		result = truncateUTF8(result, maxObservationLen) + "\n... (truncated)"
	}

	log.Debug("Tool completed", "name", d.ToolName, "resultLen", len(result))
	uc.progress.ShowToolResult(ctx, d.ToolName.String(), result, false)
	return transcript.Append(entity.ToolResultEntry(d.CallID, d.ToolName, result, false))
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
