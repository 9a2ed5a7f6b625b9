package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sona/src/persona"
	"sona/src/store"
	"sona/src/validate"
)

// traitsCmd groups trait block mutations
var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "Add or remove trait blocks on a stored persona",
}

// traitsAddCmd sets one category's trait block from inline JSON or a file
var traitsAddCmd = &cobra.Command{
	Use:   "add <persona-id> <category> <traits-json|@file>",
	Short: "Set the trait block for a category",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		raw := []byte(args[2])
		if strings.HasPrefix(args[2], "@") {
			raw, err = os.ReadFile(args[2][1:])
			if err != nil {
				return err
			}
		}

		traits := persona.NewObject()
		if err := json.Unmarshal(raw, traits); err != nil {
			return fmt.Errorf("traits must be a JSON object: %w", err)
		}

		st := store.New(settings.PersonasDir)
		p, err := st.Load(args[0])
		if err != nil {
			return err
		}

		if err := p.AddTraitBlock(args[1], traits, settings.Allowlist()); err != nil {
			return err
		}

		if _, err := st.Save(p); err != nil {
			return err
		}
		fmt.Printf("Set %s traits on %s\n", args[1], p.ID)
		return nil
	},
}

// traitsRemoveCmd drops one category; removing an absent one is a no-op
var traitsRemoveCmd = &cobra.Command{
	Use:   "remove <persona-id> <category>",
	Short: "Remove the trait block for a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		st := store.New(settings.PersonasDir)
		p, err := st.Load(args[0])
		if err != nil {
			return err
		}

		p.RemoveTraitBlock(args[1])

		if ok, errs := validate.New(settings.Allowlist()).Structure(p); !ok {
			return fmt.Errorf("persona invalid after update: %s", strings.Join(errs, "; "))
		}

		if _, err := st.Save(p); err != nil {
			return err
		}
		fmt.Printf("Removed %s traits from %s\n", args[1], p.ID)
		return nil
	},
}

func init() {
	traitsCmd.AddCommand(traitsAddCmd)
	traitsCmd.AddCommand(traitsRemoveCmd)
	rootCmd.AddCommand(traitsCmd)
}
