package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"task-tracker/config"
	"task-tracker/internal/task/delivery/cli"
	"task-tracker/internal/task/presenter"
	"task-tracker/internal/task/repository/file"
	"task-tracker/internal/task/usecase"
	"task-tracker/pkg/log"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: search ./config, ., /etc/task-tracker)")
	storagePath := flag.String("file", "", "task file, overrides storage.path")
	verbose := flag.Bool("v", false, "log at the configured level instead of warnings only")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}
	if *storagePath != "" {
		cfg.Storage.Path = *storagePath
	}

	// Replies go to stdout; logs stay on stderr.
	level := "warn"
	if *verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	taskUC := usecase.New(logger, usecase.Config{
		Storage:   file.New(afero.NewOsFs(), cfg.Storage.Path, logger),
		Presenter: presenter.NewText(cfg.Session.BotName),
	})

	if err := cli.New(logger, taskUC, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "Session ended with error: ", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
