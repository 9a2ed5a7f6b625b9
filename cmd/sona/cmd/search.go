package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/store"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search personas by name, description or trait values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		matches, err := store.New(settings.PersonasDir).Search(args[0])
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			fmt.Println("No matches")
			return nil
		}

		for _, p := range matches {
			fmt.Printf("%-24s %-24s %s\n", p.ID, p.Name, p.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
