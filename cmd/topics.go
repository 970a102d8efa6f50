package cmd

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics in the question catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, topic := range quiz.Topics(catalog.Default()) {
			fmt.Println(topic)
		}
	},
}
