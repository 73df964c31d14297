package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planora/planora/internal/observability"
	"github.com/planora/planora/internal/plan"
)

func init() {
	cmd := &cobra.Command{
		Use:   "create <goal>",
		Short: "Create a plan for a goal",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCreate,
	}
	cmd.Flags().BoolP("quiet", "q", false, "Suppress pipeline event logging")

	RootCmd.AddCommand(cmd)
}

func runCreate(cmd *cobra.Command, args []string) {
	goal := strings.TrimSpace(strings.Join(args, " "))

	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer st.Close()

	logger := observability.NewLogger()
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		logger = observability.NewLoggerTo(io.Discard)
	}

	a, err := buildAgent(cfg, st, logger)
	if err != nil {
		exitErr("build agent", err)
	}

	p, err := a.CreatePlan(cmd.Context(), goal)
	if err != nil {
		exitErr("create plan", err)
	}

	printPlan(p)
}

func printPlan(p plan.Plan) {
	fmt.Printf("Plan %s\n", p.ID)
	fmt.Printf("Goal: %s\n", p.Goal)
	fmt.Printf("Total duration: %s\n", p.TotalDuration)
	if p.Weather != nil {
		fmt.Printf("Weather in %s: %.0f°C, %s\n", p.Weather.Location, p.Weather.TempC, p.Weather.Condition)
	}

	day := 0
	for _, s := range p.Steps {
		if s.Day != day {
			day = s.Day
			fmt.Printf("\nDay %d\n", day)
		}
		fmt.Printf("  %d. %s", s.Number, s.Title)
		if s.Duration != "" {
			fmt.Printf(" (%s)", s.Duration)
		}
		fmt.Println()
		if s.Description != "" {
			fmt.Printf("     %s\n", s.Description)
		}
		if s.ExternalInfo != "" {
			fmt.Printf("     ℹ %s\n", s.ExternalInfo)
		}
	}
}
