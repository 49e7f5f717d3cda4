package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"agentoid/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct {
	appEnv string
}

// NewEnvService loads .env and then overlays .env.<APP_ENV>. Variables
// already present in the process environment win over .env, but the
// APP_ENV-specific file overrides both.
func NewEnvService() *EnvService {
	return NewEnvServiceFrom(".")
}

func NewEnvServiceFrom(dir string) *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(dir + "/.env"); err != nil {
		log.Printf("Info: no .env file with secrets found (this is OK for CI/CD)")
	}

	envFile := fmt.Sprintf("%s/.env.%s", dir, appEnv)
	if err := godotenv.Overload(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load %s: %v", envFile, err)
	}

	return &EnvService{appEnv: appEnv}
}

func (e *EnvService) AppEnv() string {
	return e.appEnv
}

func (e *EnvService) Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (e *EnvService) Require(key string) (string, error) {
	val := e.Get(key)
	if val == "" {
		return "", fmt.Errorf("ENV %s is missing", key)
	}
	return val, nil
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) (int, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue, fmt.Errorf("ENV %s: %q is not an integer", key, val)
	}
	return parsed, nil
}

func (e *EnvService) GetFloat(key string, defaultValue float64) (float64, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("ENV %s: %q is not a number", key, val)
	}
	return parsed, nil
}

// GetDuration accepts Go durations ("30s") or a bare number of seconds.
func (e *EnvService) GetDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	val := e.Get(key)
	if val == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue, fmt.Errorf("ENV %s: %q is not a duration", key, val)
	}
	return parsed, nil
}
