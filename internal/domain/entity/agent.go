package entity

type AgentRequest struct {
	UserInput    string
	SystemPrompt string
}

type AgentResponse struct {
	RequestID  string
	Output     string
	Transcript Transcript
	Steps      int
}

type DecisionKind string

const (
	DecisionCallTool DecisionKind = "call_tool"
	DecisionAnswer   DecisionKind = "answer"
)

// Decision is the model's output for one step: either a tool invocation or
// the final answer.
type Decision struct {
	Kind     DecisionKind
	CallID   string
	ToolName ToolName
	Input    string
	Text     string
}

func CallTool(callID string, name ToolName, input string) Decision {
	return Decision{Kind: DecisionCallTool, CallID: callID, ToolName: name, Input: input}
}

func Answer(text string) Decision {
	return Decision{Kind: DecisionAnswer, Text: text}
}

func (d Decision) IsFinal() bool {
	return d.Kind == DecisionAnswer
}
