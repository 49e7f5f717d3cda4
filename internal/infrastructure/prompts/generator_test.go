package prompts

import (
	"context"
	"strings"
	"testing"

	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"
)

type mockTool struct {
	name        entity.ToolName
	description string
}

func (m *mockTool) Name() entity.ToolName { return m.name }
func (m *mockTool) Description() string   { return m.description }
func (m *mockTool) Invoke(ctx context.Context, input string) (string, error) {
	return "", nil
}

type mockToolRegistry struct {
	tools []output.ToolPort
}

func (r *mockToolRegistry) Register(tool output.ToolPort) error {
	r.tools = append(r.tools, tool)
	return nil
}

func (r *mockToolRegistry) Get(name entity.ToolName) (output.ToolPort, bool) {
	for _, tool := range r.tools {
		if tool.Name() == name {
			return tool, true
		}
	}
	return nil, false
}

func (r *mockToolRegistry) All() []output.ToolPort {
	return r.tools
}

func (r *mockToolRegistry) Definitions() []entity.ToolDefinition {
	return nil
}

func (r *mockToolRegistry) Dispatch(ctx context.Context, name entity.ToolName, input string) (string, error) {
	return "", nil
}

func TestGenerateSystemPrompt(t *testing.T) {
	registry := &mockToolRegistry{}
	registry.Register(&mockTool{name: entity.ToolSearch, description: "current events"})
	registry.Register(&mockTool{name: entity.ToolLookup, description: "factual info"})
	registry.Register(&mockTool{name: entity.ToolCompute, description: "math only"})

	template := `Test template

{{range .tools -}}
- {{.Name}}: {{.Description}}
{{end}}`

	result, err := GenerateSystemPrompt(template, registry)
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}

	if !strings.Contains(result, "Test template") {
		t.Error("Result should contain base template text")
	}

	if !strings.Contains(result, "- duckduckgo: current events") {
		t.Error("Result should contain search tool description")
	}

	if !strings.Contains(result, "- wikipedia: factual info") {
		t.Error("Result should contain lookup tool description")
	}

	if !strings.Contains(result, "- math_solver: math only") {
		t.Error("Result should contain compute tool description")
	}
}

func TestGenerateSystemPromptDefaultTemplate(t *testing.T) {
	registry := &mockToolRegistry{}
	registry.Register(&mockTool{name: entity.ToolLookup, description: "factual info"})

	result, err := GenerateSystemPrompt(DefaultSystemPrompt, registry)
	if err != nil {
		t.Fatalf("GenerateSystemPrompt failed: %v", err)
	}

	if !strings.Contains(result, "links") {
		t.Error("Default prompt should demand cited links")
	}

	if !strings.Contains(result, "don't know") {
		t.Error("Default prompt should allow admitting ignorance")
	}

	if !strings.Contains(result, "- wikipedia: factual info") {
		t.Error("Default prompt should list tools")
	}
}

func TestGenerateSystemPromptInvalidTemplate(t *testing.T) {
	registry := &mockToolRegistry{}

	_, err := GenerateSystemPrompt(`Test {{.tools`, registry)
	if err == nil {
		t.Error("Expected error for invalid template, got nil")
	}
}

func TestForceAnswerPromptForbidsTools(t *testing.T) {
	if !strings.Contains(ForceAnswerPrompt, "Do NOT call any tools") {
		t.Error("Force-answer prompt should forbid tool calls")
	}
}
