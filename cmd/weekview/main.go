package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"weekview/cmd/weekview/internal/app"
	"weekview/pkg/config"
	"weekview/pkg/lifecycle"
)

const (
	defaultConfigPath = "weekview.yaml"
	logPath           = "weekview.log"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: weekview init [flags]\n\nCreate a starter weekview.yaml interactively.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		out := initCmd.String("config", defaultConfigPath, "path to write the configuration file")
		_ = initCmd.Parse(os.Args[2:])

		if err := runInitWizard(*out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: weekview [flags]\n       weekview init [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", "", "path to configuration file (default: $WEEKVIEW_CONFIG or weekview.yaml)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	dateFlag := flag.String("date", "", "initial reference date, YYYY-MM-DD (default: today)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *dateFlag); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveConfigPath picks the config file: explicit flag → $WEEKVIEW_CONFIG
// → weekview.yaml. Empty when none exists.
func resolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv("WEEKVIEW_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}

func run(configPath, dateFlag string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := config.Default()
	if path := resolveConfigPath(configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		opts = loaded
	}

	ref := time.Now()
	switch {
	case dateFlag != "":
		parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
		if err != nil {
			return fmt.Errorf("parse -date: %w", err)
		}
		ref = parsed
	case opts.InitialDate != "":
		parsed, err := time.ParseInLocation("2006-01-02", opts.InitialDate, time.Local)
		if err != nil {
			return fmt.Errorf("parse initial_date: %w", err)
		}
		ref = parsed
	}

	// The TUI owns the terminal, so the observability sink writes to a file.
	logger, err := fileLogger(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := newMemStore(ref)
	fac := lifecycle.New(store.Callbacks(), logger)

	model := app.New(ctx, opts, fac, store.Snapshot, ref)

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

func fileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log sink: %w", err)
	}
	return logger, nil
}
