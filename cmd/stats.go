package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.ProgressRepo().LoadAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		cat := catalog.Default()
		stats := progress.CalculateStats(records, cat)

		fmt.Printf("Questions: %d total, %d new, %d learning, %d mastered\n",
			stats.Total, stats.New, stats.Learning, stats.Mastered)
		fmt.Printf("Overall accuracy: %.0f%%\n", stats.Accuracy*100)

		if len(stats.Topics) > 0 {
			fmt.Println("\nBy topic:")
			for _, ts := range stats.Topics {
				fmt.Printf("  %-12s %d/%d (%.0f%%)\n",
					ts.Topic, ts.Correct, ts.Total, ts.Accuracy()*100)
			}
		}

		if weakest := progress.WeakestTopics(stats, progress.DefaultWeakTopicLimit); len(weakest) > 0 {
			fmt.Printf("\nNeeds work: %s\n", strings.Join(weakest, ", "))
		}

		due := progress.QuestionsNeedingReview(cat, records)
		fmt.Printf("Due for review: %d questions\n", len(due))

		return nil
	},
}
