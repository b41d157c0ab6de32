package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/enterprise-empire/internal/actions"
	"github.com/tatianab/enterprise-empire/internal/advisor"
	"github.com/tatianab/enterprise-empire/internal/config"
	"github.com/tatianab/enterprise-empire/internal/engine"
	"github.com/tatianab/enterprise-empire/internal/models"
	"github.com/tatianab/enterprise-empire/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	f, err := tea.LogToFile(cfg.LogFile, "empire")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := cfg.NewLogger(f)
	slog.SetDefault(logger)

	catalog := models.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = models.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	eng := engine.NewEngine(engine.WithLogger(logger))
	mgr := actions.NewManager(eng, catalog, logger)

	var adv *advisor.Advisor
	if cfg.AdvisorEnabled() {
		gem, err := advisor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.AdvisorModel)
		if err != nil {
			fmt.Printf("Error creating advisor: %v\n", err)
			os.Exit(1)
		}
		defer gem.Close()

		adv, err = advisor.New(gem, logger)
		if err != nil {
			fmt.Printf("Error creating advisor: %v\n", err)
			os.Exit(1)
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, advisor disabled")
	}

	if err := tui.Run(eng, mgr, adv); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
