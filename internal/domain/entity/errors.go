package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInitialization = errors.New("agent initialization failed")
	ErrTool           = errors.New("tool failed")
	ErrUnknownTool    = errors.New("unknown tool")
	ErrCompletion     = errors.New("completion failed")
	ErrUserInput      = errors.New("invalid user input")
	ErrStepLimit      = errors.New("agent step limit reached")
)

// InitializationError means the agent cannot be used for this session.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() []error {
	return []error{ErrInitialization, e.Err}
}

// ToolError is recoverable: the loop hands its text back to the model.
type ToolError struct {
	Tool ToolName
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() []error {
	return []error{ErrTool, e.Err}
}

func NewToolError(tool ToolName, format string, args ...any) *ToolError {
	return &ToolError{Tool: tool, Err: fmt.Errorf(format, args...)}
}

// CompletionError is returned once every attempt against the inference
// endpoint failed.
type CompletionError struct {
	Attempts int
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *CompletionError) Unwrap() []error {
	return []error{ErrCompletion, e.Err}
}

type UserInputError struct {
	Reason string
}

func (e *UserInputError) Error() string {
	return e.Reason
}

func (e *UserInputError) Unwrap() error {
	return ErrUserInput
}
