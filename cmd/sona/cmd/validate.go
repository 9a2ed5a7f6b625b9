package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sona/src/persona"
	"sona/src/store"
	"sona/src/validate"
)

var validateSuggest bool

// validateCmd checks a document without persisting anything
var validateCmd = &cobra.Command{
	Use:   "validate <file.json|persona-id>",
	Short: "Validate a persona document against the category allow-list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		var p *persona.Persona
		if data, readErr := os.ReadFile(args[0]); readErr == nil {
			p, err = persona.FromJSON(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
		} else {
			p, err = store.New(settings.PersonasDir).Load(args[0])
			if err != nil {
				return err
			}
		}

		v := validate.New(settings.Allowlist())
		categoriesOK, invalid := v.Categories(p)
		structureOK, errs := v.Structure(p)

		if categoriesOK && structureOK {
			fmt.Println("Valid")
		} else {
			for _, e := range errs {
				fmt.Printf("  error: %s\n", e)
			}
			for _, c := range invalid {
				fmt.Printf("  invalid category: %s\n", c)
			}
		}

		if validateSuggest {
			report := v.CompletenessReport(p)
			fmt.Printf("Completeness: %.1f%% (%d/%d categories, %d traits)\n",
				report.CompletenessScore, report.FilledCategories,
				report.TotalCategories, report.TotalTraits)
			for _, s := range v.SuggestTraits(p) {
				fmt.Printf("  suggestion: %s\n", s)
			}
		}

		if !categoriesOK || !structureOK {
			return fmt.Errorf("persona is invalid")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateSuggest, "suggest", false, "Also report completeness and suggested categories")
	rootCmd.AddCommand(validateCmd)
}
