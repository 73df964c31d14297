// Package cli implements the planora CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/planora/planora/internal/agent"
	"github.com/planora/planora/internal/observability"
	"github.com/planora/planora/internal/server"
	"github.com/planora/planora/internal/store"
	"github.com/planora/planora/internal/tools"
	"github.com/planora/planora/pkg/config"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "planora",
	Short: "Turn a free-text goal into a day-by-day action plan",
	Long: "Planora decomposes a goal with a completion model, enriches each step " +
		"with a web-search snippet, attaches weather when the goal names a " +
		"location, and stores the plan in a local SQLite database.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: config.yaml if present, else environment)")
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return config.Load("config.yaml")
	}
	return config.Default(), nil
}

func openStore(cfg *config.Config) (*store.PlanStore, error) {
	return store.NewPlanStore(cfg.Store.Path)
}

// buildAgent wires the full pipeline from config.
func buildAgent(cfg *config.Config, st *store.PlanStore, logger *observability.Logger) (*agent.Agent, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.Provider.APIKey),
		openai.WithModel(cfg.Provider.Model),
	}
	if cfg.Provider.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.Provider.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("init completion model: %w", err)
	}

	var searcher tools.Searcher
	if cfg.Search.SerpAPIKey != "" {
		searcher = tools.NewSerpSearcher(cfg.Search.SerpAPIKey, cfg.Search.MaxResults, cfg.Timeouts.Search())
	} else {
		searcher, err = tools.NewDuckDuckGoSearcher(cfg.Search.MaxResults)
		if err != nil {
			return nil, fmt.Errorf("init search client: %w", err)
		}
	}

	weather := tools.NewOpenWeatherClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Timeouts.Weather())

	return agent.New(
		agent.NewDecomposer(model, cfg.Timeouts.Completion(), logger),
		agent.NewEnricher(searcher, cfg.Timeouts.Search(), logger),
		agent.NewAugmenter(weather, cfg.Timeouts.Weather(), logger),
		st,
		logger,
	), nil
}

func newServer(cfg *config.Config, st *store.PlanStore, logger *observability.Logger) (*server.Server, error) {
	a, err := buildAgent(cfg, st, logger)
	if err != nil {
		return nil, err
	}
	return server.New(a), nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
