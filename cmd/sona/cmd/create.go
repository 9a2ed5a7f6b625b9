package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/persona"
	"sona/src/store"
)

var (
	createDescription string
	createCategory    string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <persona-id> <name>",
	Short: "Create a new empty persona",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		p, err := persona.New(args[0], args[1])
		if err != nil {
			return err
		}
		p.Description = createDescription
		p.Category = createCategory
		p.LLMConfig = settings.DefaultLLMConfig()

		path, err := store.New(settings.PersonasDir).Save(p)
		if err != nil {
			return err
		}

		fmt.Printf("Created persona %s at %s\n", p.ID, path)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Brief description of the persona")
	createCmd.Flags().StringVarP(&createCategory, "category", "c", "", "Category type (professional, social, educational, ...)")
	rootCmd.AddCommand(createCmd)
}
