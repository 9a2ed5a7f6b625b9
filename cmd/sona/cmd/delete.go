package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/store"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <persona-id>",
	Short: "Delete a stored persona",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		deleted, err := store.New(settings.PersonasDir).Delete(args[0])
		if err != nil {
			return err
		}

		if deleted {
			fmt.Printf("Deleted %s\n", args[0])
		} else {
			fmt.Printf("No persona %s to delete\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
