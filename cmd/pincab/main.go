package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"pincab/internal/config"
	"pincab/internal/log"
	"pincab/internal/service"
	"pincab/internal/store"
	"pincab/internal/tui"
	"pincab/internal/vpin"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var serverURL string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&serverURL, "server", "", "backend base URL (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("pincab %s\n", Version)
		return
	}

	if err := run(serverURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serverOverride string) error {
	cfgStore := config.NewStore("")
	cfg, err := cfgStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serverOverride != "" {
		cfg.Server.BaseURL = serverOverride
	}

	logger, err := log.Setup(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting pincab", "version", Version, "server", cfg.Server.BaseURL)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pincab requires an interactive terminal")
	}

	client := vpin.NewClient(cfg.Server.BaseURL, logger)

	cabinetStore, err := store.NewCabinetStore(config.DefaultCacheDir(), cfg.Server.BaseURL)
	if err != nil {
		logger.Warn("cache unavailable, continuing without", "error", err)
		cabinetStore, _ = store.NewCabinetStore("", cfg.Server.BaseURL)
	}
	defer cabinetStore.Close()

	gameSvc := service.NewGameService(client, cabinetStore, logger)
	actionSvc := service.NewActionService(client, logger)
	wheels := service.NewWheelResolver(client, cabinetStore, logger)

	model := tui.NewModel(gameSvc, actionSvc, wheels, client, cfgStore, cfg, logger)
	model.Retarget = func(baseURL string) error {
		client.SetBaseURL(baseURL)
		return cabinetStore.Retarget(baseURL)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
