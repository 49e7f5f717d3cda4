package entity

type ToolName string

const (
	ToolSearch  ToolName = "duckduckgo"
	ToolLookup  ToolName = "wikipedia"
	ToolCompute ToolName = "math_solver"
)

func (t ToolName) String() string {
	return string(t)
}

// ToolInputSchema is the parameter schema shared by every tool: a single
// free-text string.
func ToolInputSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"input": map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"input"},
	}
}
