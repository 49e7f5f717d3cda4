package di

import (
	"fmt"

	"agentoid/internal/adapter/tool"
	"agentoid/internal/application/port/input"
	"agentoid/internal/application/port/output"
	"agentoid/internal/application/service"
	"agentoid/internal/domain/entity"
	"agentoid/internal/infrastructure/llm/groq"
	"agentoid/internal/infrastructure/llm/langchain"
	"agentoid/internal/infrastructure/prompts"
	"agentoid/internal/usecase/ask"
	"agentoid/internal/usecase/completion"
	"agentoid/internal/usecase/executor"
)

const userAgent = "agentoid/1.0"

type Container struct {
	Logger       output.LoggerPort
	Tools        output.ToolRegistry
	Executor     input.AgentExecutor
	Asker        input.Asker
	SystemPrompt string
}

// NewContainer wires the agent. Every failure is an
// *entity.InitializationError. progress may be nil.
func NewContainer(cfg Config, log output.LoggerPort, progress output.ProgressPort) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	llmCfg := groq.DefaultConfig(cfg.GroqAPIKey, cfg.Model)
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	llmCfg.Timeout = cfg.Timeout
	llmCfg.Logger = log
	llm := groq.NewAdapter(llmCfg)

	model, err := langchain.NewModel(llmCfg)
	if err != nil {
		return nil, &entity.InitializationError{Err: err}
	}

	tools := service.NewToolRegistry()
	if err := registerTools(tools, cfg, langchain.NewMathChain(model), log); err != nil {
		return nil, &entity.InitializationError{Err: err}
	}

	template := cfg.SystemPrompt
	if template == "" {
		template = prompts.DefaultSystemPrompt
	}
	systemPrompt, err := prompts.GenerateSystemPrompt(template, tools)
	if err != nil {
		return nil, &entity.InitializationError{Err: err}
	}

	completionClient := completion.New(llm, completion.Config{
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		MaxRetries:  cfg.MaxRetries,
	}, log)

	exec := executor.New(completionClient, tools, progress, log, executor.Config{
		MaxSteps:               cfg.MaxSteps,
		ForceAnswerInstruction: prompts.ForceAnswerPrompt,
	})

	log.Info("Agent initialized",
		"model", cfg.Model,
		"baseURL", llmCfg.BaseURL,
		"tools", len(tools.All()),
		"maxSteps", cfg.MaxSteps,
	)

	return &Container{
		Logger:       log,
		Tools:        tools,
		Executor:     exec,
		Asker:        ask.New(exec, systemPrompt, log),
		SystemPrompt: systemPrompt,
	}, nil
}

func registerTools(registry *service.ToolRegistryImpl, cfg Config, solver output.MathSolverPort, log output.LoggerPort) error {
	search, err := langchain.NewDuckDuckGo(cfg.SearchMaxResults, userAgent)
	if err != nil {
		return err
	}

	for _, t := range []output.ToolPort{
		tool.NewSearchTool(search, log),
		tool.NewLookupTool(langchain.NewWikipedia(userAgent), log),
		tool.NewComputeTool(solver, log),
	} {
		if err := registry.Register(t); err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}
	return nil
}
