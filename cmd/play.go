package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/explain"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("grade", "", "Grade band filter: elementary, middle, or high")
	playCmd.Flags().String("topic", "", "Topic filter, see 'quizdeck topics'")
	playCmd.Flags().Int("count", 10, "Questions per session (0 for all matching)")
}

// runPlay wires the store, catalog, and optional explanation provider into
// the TUI. The bare root command reuses it with default flags.
func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := quiz.Config{Count: 10}
	if g, _ := cmd.Flags().GetString("grade"); g != "" {
		grade, ok := catalog.ParseGrade(g)
		if !ok {
			return fmt.Errorf("unknown grade band %q", g)
		}
		cfg.Grade = grade
	}
	cfg.Topic, _ = cmd.Flags().GetString("topic")
	if cmd.Flags().Lookup("count") != nil {
		cfg.Count, _ = cmd.Flags().GetInt("count")
	}

	opts := app.Options{
		Catalog:  catalog.Default(),
		Config:   cfg,
		Progress: st.ProgressRepo(),
		Events:   st.EventRepo(),
	}

	// Explanation provider is optional; the app works without it.
	provider, err := explain.NewProviderFromEnv(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Explanation provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Questions without a bundled explanation will show none.")
	} else {
		opts.Explainer = provider
	}

	return app.Run(opts)
}
