package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/store"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <persona-id>",
	Short: "Print a stored persona document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		p, err := store.New(settings.PersonasDir).Load(args[0])
		if err != nil {
			return err
		}

		data, err := p.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
