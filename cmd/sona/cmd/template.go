package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/persona"
	"sona/src/store"
	"sona/src/templates"
)

var (
	applyID          string
	applyName        string
	applyDescription string
)

// templateCmd groups template catalog operations
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Browse and instantiate pre-built persona templates",
}

// templateListCmd lists the catalog
var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range templates.Catalog() {
			fmt.Printf("%-20s %-24s %s\n", t.ID, t.Name, t.Description)
		}
		return nil
	},
}

// templateShowCmd prints a template document
var templateShowCmd = &cobra.Command{
	Use:   "show <template-id>",
	Short: "Print a template persona document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := templates.Get(args[0])
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

// templateApplyCmd instantiates a template into the store
var templateApplyCmd = &cobra.Command{
	Use:   "apply <template-id>",
	Short: "Instantiate a template as a new stored persona",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		var custom *persona.Object
		if applyID != "" || applyName != "" || applyDescription != "" {
			custom = persona.NewObject()
			if applyID != "" {
				custom.Set("persona_id", applyID)
			}
			if applyName != "" {
				custom.Set("name", applyName)
			}
			if applyDescription != "" {
				custom.Set("description", applyDescription)
			}
		}

		p, err := templates.Apply(args[0], custom)
		if err != nil {
			return err
		}

		path, err := store.New(settings.PersonasDir).Save(p)
		if err != nil {
			return err
		}
		fmt.Printf("Created persona %s at %s\n", p.ID, path)
		return nil
	},
}

func init() {
	templateApplyCmd.Flags().StringVar(&applyID, "id", "", "Persona id for the new instance")
	templateApplyCmd.Flags().StringVar(&applyName, "name", "", "Display name override")
	templateApplyCmd.Flags().StringVar(&applyDescription, "description", "", "Description override")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateApplyCmd)
	rootCmd.AddCommand(templateCmd)
}
