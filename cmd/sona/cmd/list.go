package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/store"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored personas, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		summaries, err := store.New(settings.PersonasDir).List()
		if err != nil {
			return err
		}

		if len(summaries) == 0 {
			fmt.Println("No personas found")
			return nil
		}

		for _, s := range summaries {
			desc := s.Description
			if len(desc) > 60 {
				desc = desc[:57] + "..."
			}
			fmt.Printf("%-24s %-24s %2d traits  %s\n", s.ID, s.Name, s.TraitCount, desc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
