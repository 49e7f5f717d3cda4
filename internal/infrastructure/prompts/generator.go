package prompts

import (
	"fmt"

	"agentoid/internal/application/port/output"

	"github.com/tmc/langchaingo/prompts"
)

type ToolInfo struct {
	Name        string
	Description string
}

// GenerateSystemPrompt renders baseTemplate with the registry's tools under
// the "tools" key. Tools come out sorted by name.
func GenerateSystemPrompt(baseTemplate string, registry output.ToolRegistry) (string, error) {
	tools := registry.All()
	toolInfos := make([]ToolInfo, 0, len(tools))
	for _, tool := range tools {
		toolInfos = append(toolInfos, ToolInfo{
			Name:        tool.Name().String(),
			Description: tool.Description(),
		})
	}

	tmpl := prompts.NewPromptTemplate(baseTemplate, []string{"tools"})
	prompt, err := tmpl.Format(map[string]any{"tools": toolInfos})
	if err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return prompt, nil
}
