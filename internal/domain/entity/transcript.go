package entity

type EntryKind string

const (
	EntryUserMessage EntryKind = "user_message"
	EntryToolCall    EntryKind = "tool_call"
	EntryToolResult  EntryKind = "tool_result"
	EntryFinalAnswer EntryKind = "final_answer"
)

// TranscriptEntry is one tagged record of a request's history. Text is set
// for user messages and final answers; ToolName, CallID and Input/Output are
// set for tool calls and tool results.
type TranscriptEntry struct {
	Kind     EntryKind `json:"kind"`
	Text     string    `json:"text,omitempty"`
	ToolName ToolName  `json:"tool_name,omitempty"`
	CallID   string    `json:"call_id,omitempty"`
	Input    string    `json:"input,omitempty"`
	Output   string    `json:"output,omitempty"`
	IsError  bool      `json:"is_error,omitempty"`
}

func UserMessage(text string) TranscriptEntry {
	return TranscriptEntry{Kind: EntryUserMessage, Text: text}
}

func ToolCallEntry(callID string, name ToolName, input string) TranscriptEntry {
	return TranscriptEntry{Kind: EntryToolCall, CallID: callID, ToolName: name, Input: input}
}

func ToolResultEntry(callID string, name ToolName, output string, isError bool) TranscriptEntry {
	return TranscriptEntry{Kind: EntryToolResult, CallID: callID, ToolName: name, Output: output, IsError: isError}
}

func FinalAnswer(text string) TranscriptEntry {
	return TranscriptEntry{Kind: EntryFinalAnswer, Text: text}
}

// Transcript is append-only within one request.
type Transcript []TranscriptEntry

func NewTranscript(userInput string) Transcript {
	return Transcript{UserMessage(userInput)}
}

func (t Transcript) Append(entry TranscriptEntry) Transcript {
	return append(t, entry)
}

// ToolCalls returns the tool call entries, optionally filtered by tool name.
func (t Transcript) ToolCalls(name ToolName) []TranscriptEntry {
	var calls []TranscriptEntry
	for _, e := range t {
		if e.Kind != EntryToolCall {
			continue
		}
		if name != "" && e.ToolName != name {
			continue
		}
		calls = append(calls, e)
	}
	return calls
}

// Final returns the final answer entry, if the transcript reached one.
func (t Transcript) Final() (TranscriptEntry, bool) {
	if len(t) == 0 {
		return TranscriptEntry{}, false
	}
	last := t[len(t)-1]
	return last, last.Kind == EntryFinalAnswer
}
