package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agentoid/internal/application/port/input"
	"agentoid/internal/application/port/output"
	"agentoid/internal/di"
	"agentoid/internal/infrastructure/env"
	"agentoid/internal/infrastructure/logger"
	"agentoid/internal/infrastructure/userinteraction"
	"agentoid/internal/infrastructure/web"
	"agentoid/internal/usecase/ask"

	"github.com/fatih/color"
)

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envService := env.NewEnvService()
	cfg, cfgErr := di.LoadConfig(envService)

	log, err := logger.NewLoggerAdapter(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Mode == di.ModeWeb {
		return runWeb(ctx, cfg, cfgErr, log)
	}
	if cfgErr != nil {
		return cfgErr
	}
	return runConsole(ctx, cfg, log)
}

func runConsole(ctx context.Context, cfg di.Config, log output.LoggerPort) error {
	spinner := userinteraction.NewSpinner(os.Stdout, userinteraction.ThinkingMessage)

	var progress output.ProgressPort
	if cfg.Verbose {
		progress = userinteraction.NewConsoleProgress(spinner)
	}

	container, err := di.NewContainer(cfg, log, progress)
	if err != nil {
		return err
	}

	opts := []userinteraction.ShellOption{userinteraction.WithSpinner(spinner)}
	if render, err := userinteraction.NewMarkdownRenderer(0); err != nil {
		log.Warn("Markdown rendering disabled", "error", err)
	} else {
		opts = append(opts, userinteraction.WithRenderer(render))
	}

	return userinteraction.NewShell(container.Asker, os.Stdin, os.Stdout, opts...).Run(ctx)
}

// runWeb serves even when the agent failed to initialize, so the page can
// report the failure.
func runWeb(ctx context.Context, cfg di.Config, cfgErr error, log output.LoggerPort) error {
	var asker input.Asker
	if cfgErr != nil {
		log.Error("Initialization failed", "error", cfgErr)
		asker = ask.Unavailable(cfgErr, log)
	} else if container, err := di.NewContainer(cfg, log, nil); err != nil {
		log.Error("Initialization failed", "error", err)
		asker = ask.Unavailable(err, log)
	} else {
		asker = container.Asker
	}

	server := web.NewServer(asker, log, web.NewAccessLogger(cfg.LogLevel))
	return server.Run(ctx, cfg.Addr)
}
