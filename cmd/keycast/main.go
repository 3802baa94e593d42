// Package main is the entry point for the keycast keystroke visualizer.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keycast/internal/app"
	"github.com/dshills/keycast/internal/config"
	"github.com/dshills/keycast/internal/logging"
	"github.com/dshills/keycast/internal/overlay"
	"github.com/dshills/keycast/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		width       = flag.Int("width", 0, "overlay width in columns (overrides config)")
		height      = flag.Int("height", 0, "overlay height in rows (overrides config)")
		logLevel    = flag.String("log-level", "", "log level: debug, info, warn, error")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("keycast %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg = flagOverride(*width, *height, *logLevel).Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	log, err := logging.Open(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	opts := []app.Option{app.WithLogger(log)}
	if cfg.Script != "" {
		hook, err := script.Load(cfg.Script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		opts = append(opts, app.WithHook(hook))
	}

	term, err := overlay.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application := app.New(cfg, term, opts...)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// flagOverride turns command-line flags into a config override. Zero
// or empty flag values mean "not set".
func flagOverride(width, height int, logLevel string) config.Override {
	var o config.Override
	if width > 0 {
		o.Width = &width
	}
	if height > 0 {
		o.Height = &height
	}
	if logLevel != "" {
		o.Log.Level = &logLevel
	}
	return o
}
