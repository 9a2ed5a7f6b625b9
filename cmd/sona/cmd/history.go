package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/database"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [persona-id]",
	Short: "Show recently generated prompts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		db, err := database.NewHistoryDB(settings.HistoryDB)
		if err != nil {
			return err
		}
		defer db.Close()

		var renders []database.Render
		if len(args) == 1 {
			renders, err = db.ForPersona(args[0], historyLimit)
		} else {
			renders, err = db.Recent(historyLimit)
		}
		if err != nil {
			return err
		}

		if len(renders) == 0 {
			fmt.Println("No renders recorded")
			return nil
		}

		for _, r := range renders {
			context := r.Context
			if context == "" {
				context = "-"
			}
			fmt.Printf("[%s] %-24s context=%-16s %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"),
				r.PersonaID, context, truncate(r.Prompt, 60))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum renders to show")
	rootCmd.AddCommand(historyCmd)
}
