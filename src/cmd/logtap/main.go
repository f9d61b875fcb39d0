// File: logtap/src/cmd/logtap/main.go

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"logtap/src/internal/config"

	"github.com/LixenWraith/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:     "logtap",
		Short:   "Load and summarize a logtap configuration file",
		Version: "0.1.0",
		RunE:    run,
	}
	root.Flags().StringVarP(&configFile, "config", "c", "", "path to configuration file (default: XDG config search)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path := configFile
	if path == "" {
		resolved, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("resolving default config path: %w", err)
		}
		path = resolved
	}

	if err := logger.Init(ctx, &logger.LoggerConfig{Level: logger.LevelInfo, Directory: os.TempDir(), BufferSize: 100}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = logger.Shutdown(shutdownCtx)
	}()

	logger.Info(ctx, "loading configuration", "path", path)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Error(ctx, "failed to load configuration", "error", err)
		return fmt.Errorf("loading configuration: %w", err)
	}

	printSummary(cfg)
	return nil
}

func printSummary(cfg *config.Config) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgMagenta)

	header.Printf("logtap configuration (%s)\n\n", cfg.Mode)
	label.Print("port:            ")
	fmt.Println(cfg.Port)
	label.Print("log level:       ")
	fmt.Println(cfg.Logger.Level)
	label.Print("log directory:   ")
	fmt.Println(cfg.Logger.Directory)
	label.Print("tls enabled:     ")
	fmt.Println(cfg.Security.TLSEnabled)
	label.Print("auth enabled:    ")
	fmt.Println(cfg.Security.AuthEnabled)

	targets := cfg.GetMonitorTargets()
	label.Printf("monitor targets: %d\n", len(targets))
	for _, t := range targets {
		kind := "directory"
		if t.IsFile {
			kind = "file"
		}
		fmt.Printf("  - %-9s %s", kind, t.Path)
		if !t.IsFile {
			fmt.Printf(" (pattern %s)", t.Pattern)
		}
		fmt.Println()
	}
}
