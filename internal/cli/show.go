package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planora/planora/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored plan",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer st.Close()

	p, err := st.Load(cmd.Context(), args[0])
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "no plan with id %s\n", args[0])
		os.Exit(1)
	}
	if err != nil {
		exitErr("load plan", err)
	}

	printPlan(p)
}
