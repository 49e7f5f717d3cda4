package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

type ToolRegistryImpl struct {
	mu    sync.RWMutex
	tools map[entity.ToolName]output.ToolPort
}

func NewToolRegistry() *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
	}
}

// Register adds a tool. Names are unique.
func (r *ToolRegistryImpl) Register(tool output.ToolPort) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = tool
	return nil
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// All returns the registered tools sorted by name.
func (r *ToolRegistryImpl) All() []output.ToolPort {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]output.ToolPort, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	tools := r.All()
	result := make([]entity.ToolDefinition, 0, len(tools))
	for _, tool := range tools {
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name().String(),
			Description: tool.Description(),
			Parameters:  entity.ToolInputSchema("Input passed verbatim to the " + tool.Name().String() + " tool"),
		})
	}
	return result
}

// Dispatch invokes the named tool. Any failure comes back as *entity.ToolError.
func (r *ToolRegistryImpl) Dispatch(ctx context.Context, name entity.ToolName, input string) (string, error) {
	tool, ok := r.Get(name)
	if !ok {
		return "", &entity.ToolError{Tool: name, Err: entity.ErrUnknownTool}
	}

	result, err := tool.Invoke(ctx, input)
	if err != nil {
		var toolErr *entity.ToolError
		if errors.As(err, &toolErr) {
			return "", err
		}
		return "", &entity.ToolError{Tool: name, Err: err}
	}
	return result, nil
}
