package prompts

import (
	_ "embed"
)

//go:embed system.txt
var DefaultSystemPrompt string

//go:embed force_answer.txt
var ForceAnswerPrompt string
