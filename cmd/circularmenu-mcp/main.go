package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"circularmenu/internal/animation"
	"circularmenu/internal/config"
	"circularmenu/internal/journal"
	"circularmenu/internal/logging"
	"circularmenu/internal/mcpserver"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "settings file (default: XDG config dir)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logs always go to a file.
	if cfg.Log.File != "" {
		logging.SetLogFilename(cfg.Log.File)
	}
	logging.Init(cfg.Log.Level)
	defer logging.CloseLogger()

	state, err := cfg.NewState()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var history mcpserver.HistoryReader
	if cfg.Journal.Enabled {
		j, err := journal.Open(ctx, cfg.Journal.DSN, state,
			[]journal.ClientOption{
				journal.WithThreads(cfg.Journal.Threads),
				journal.WithMemoryLimit(cfg.Journal.MemoryLimitMB),
			},
			journal.WithBufferSize(cfg.Journal.BufferSize),
			journal.WithRecorderPolicy(cfg.Animation.Policy),
		)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		history = j.Repo
	}

	easing, err := animation.ParseEasing(cfg.Animation.Easing)
	if err != nil {
		return err
	}

	srv, err := mcpserver.NewServer(mcpserver.Config{
		ServerVersion: version,
		Policy:        cfg.Animation.Policy,
		Easing:        easing,
	}, state, history, animation.SystemClock{})
	if err != nil {
		return err
	}
	defer srv.Close()

	if err := srv.Start(ctx); err != nil && ctx.Err() == nil {
		slog.Error("mcp server stopped", "error", err)
		return err
	}
	return nil
}
