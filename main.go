package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"circularmenu/internal/animation"
	"circularmenu/internal/config"
	"circularmenu/internal/journal"
	"circularmenu/internal/logging"
	"circularmenu/internal/output"
	"circularmenu/ui/console"
	"circularmenu/ui/tui"
)

func main() {
	configPath := flag.String("config", "", "settings file (default: XDG config dir)")
	report := flag.Bool("report", false, "print the menu report and exit")
	saveConfig := flag.Bool("save-config", false, "write the effective settings to the XDG config dir and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	if cfg.Log.File != "" {
		logging.SetLogFilename(cfg.Log.File)
	}
	logging.Init(cfg.Log.Level)
	defer logging.CloseLogger()

	st, err := cfg.NewState()
	if err != nil {
		fmt.Printf("Error building menu: %v\n", err)
		os.Exit(1)
	}

	if *report {
		frame := animation.NewDriver(st.Snapshot(), animation.WithPolicy(cfg.Animation.Policy)).Sample(time.Now())
		console.Print(os.Stdout, output.BuildReport(st, frame, cfg.Animation.Policy))
		return
	}

	// A nil *journal.Repo inside the interface would not compare equal to nil.
	var history tui.History
	if cfg.Journal.Enabled {
		j, err := journal.Open(context.Background(), cfg.Journal.DSN, st,
			[]journal.ClientOption{
				journal.WithThreads(cfg.Journal.Threads),
				journal.WithMemoryLimit(cfg.Journal.MemoryLimitMB),
			},
			journal.WithBufferSize(cfg.Journal.BufferSize),
			journal.WithRecorderPolicy(cfg.Animation.Policy),
		)
		if err != nil {
			fmt.Printf("Error opening journal: %v\n", err)
			os.Exit(1)
		}
		defer j.Close()
		history = j.Repo
	}

	if err := tui.Start(cfg, st, history); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
