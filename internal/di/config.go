package di

import (
	"errors"
	"fmt"
	"time"

	"agentoid/internal/domain/entity"
	"agentoid/internal/infrastructure/env"
	"agentoid/internal/infrastructure/llm/groq"
	"agentoid/internal/usecase/executor"
)

const (
	ModeConsole = "console"
	ModeWeb     = "web"

	DefaultModel            = "mixtral-8x7b-32768"
	DefaultTemperature      = 0.7
	DefaultMaxRetries       = 1
	DefaultAddr             = ":8501"
	DefaultSearchMaxResults = 5
	DefaultLogLevel         = "info"
)

type Config struct {
	GroqAPIKey  string
	Model       string
	BaseURL     string
	Temperature float32
	// MaxTokens of zero leaves the limit to the endpoint.
	MaxTokens int
	// Timeout of zero means no per-request limit.
	Timeout          time.Duration
	MaxRetries       int
	MaxSteps         int
	SearchMaxResults int

	Mode    string
	Addr    string
	Verbose bool

	LogLevel string
	LogFile  string

	// SystemPrompt overrides the embedded prompt template.
	SystemPrompt string
}

func DefaultConfig() Config {
	return Config{
		Model:            DefaultModel,
		BaseURL:          groq.DefaultBaseURL,
		Temperature:      DefaultTemperature,
		MaxRetries:       DefaultMaxRetries,
		MaxSteps:         executor.DefaultMaxSteps,
		SearchMaxResults: DefaultSearchMaxResults,
		Mode:             ModeConsole,
		Addr:             DefaultAddr,
		Verbose:          true,
		LogLevel:         DefaultLogLevel,
	}
}

// LoadConfig reads the configuration from the environment. Values that fail
// to parse are reported together as an *entity.InitializationError; the
// returned Config still carries defaults for them so the shells can start.
func LoadConfig(e *env.EnvService) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	cfg.GroqAPIKey = e.Get("GROQ_API_KEY")
	cfg.Model = e.GetWithDefault("AGENTOID_MODEL", cfg.Model)
	cfg.BaseURL = e.GetWithDefault("AGENTOID_BASE_URL", cfg.BaseURL)
	cfg.Mode = e.GetWithDefault("AGENTOID_MODE", cfg.Mode)
	cfg.Addr = e.GetWithDefault("AGENTOID_ADDR", cfg.Addr)
	cfg.Verbose = e.GetBool("AGENTOID_VERBOSE", cfg.Verbose)
	cfg.LogLevel = e.GetWithDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = e.Get("LOG_FILE")

	if v, err := e.GetFloat("AGENTOID_TEMPERATURE", DefaultTemperature); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Temperature = float32(v)
	}
	if v, err := e.GetInt("AGENTOID_MAX_TOKENS", cfg.MaxTokens); err != nil {
		errs = append(errs, err)
	} else {
		cfg.MaxTokens = v
	}
	if v, err := e.GetDuration("AGENTOID_TIMEOUT", cfg.Timeout); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Timeout = v
	}
	if v, err := e.GetInt("AGENTOID_MAX_RETRIES", cfg.MaxRetries); err != nil {
		errs = append(errs, err)
	} else {
		cfg.MaxRetries = v
	}
	if v, err := e.GetInt("AGENTOID_MAX_STEPS", cfg.MaxSteps); err != nil {
		errs = append(errs, err)
	} else {
		cfg.MaxSteps = v
	}
	if v, err := e.GetInt("SEARCH_MAX_RESULTS", cfg.SearchMaxResults); err != nil {
		errs = append(errs, err)
	} else {
		cfg.SearchMaxResults = v
	}

	if len(errs) > 0 {
		return cfg, &entity.InitializationError{Err: errors.Join(errs...)}
	}
	return cfg, nil
}

// Validate reports the first problem that makes the agent unusable.
func (c Config) Validate() error {
	var err error
	switch {
	case c.GroqAPIKey == "":
		err = errors.New("GROQ_API_KEY is not set")
	case c.Model == "":
		err = errors.New("model id is empty")
	case c.Temperature < 0 || c.Temperature > 2:
		err = fmt.Errorf("temperature %.2f is outside [0, 2]", c.Temperature)
	case c.MaxTokens < 0:
		err = fmt.Errorf("max tokens %d is negative", c.MaxTokens)
	case c.Timeout < 0:
		err = fmt.Errorf("timeout %s is negative", c.Timeout)
	case c.MaxRetries < 0:
		err = fmt.Errorf("max retries %d is negative", c.MaxRetries)
	case c.MaxSteps <= 0:
		err = fmt.Errorf("max steps must be positive, got %d", c.MaxSteps)
	case c.SearchMaxResults <= 0:
		err = fmt.Errorf("search max results must be positive, got %d", c.SearchMaxResults)
	case c.Mode != ModeConsole && c.Mode != ModeWeb:
		err = fmt.Errorf("unknown mode %q, want %s or %s", c.Mode, ModeConsole, ModeWeb)
	}
	if err != nil {
		return &entity.InitializationError{Err: err}
	}
	return nil
}
