package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sona/src/persona"
	"sona/src/store"
)

// cloneCmd copies a persona under a new identity
var cloneCmd = &cobra.Command{
	Use:   "clone <persona-id> <new-id> <new-name>",
	Short: "Copy a persona under a new id and name",
	Args:  cobra.ExactArgs(3),
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

		path, err := st.Save(p.Clone(args[1], args[2]))
		if err != nil {
			return err
		}
		fmt.Printf("Cloned %s to %s at %s\n", args[0], args[1], path)
		return nil
	},
}

// mergeCmd overlays one persona's traits onto another
var mergeCmd = &cobra.Command{
	Use:   "merge <base-id> <overlay-id> <new-id>",
	Short: "Merge two personas, overlay winning on conflicts",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		st := store.New(settings.PersonasDir)
		base, err := st.Load(args[0])
		if err != nil {
			return err
		}
		overlay, err := st.Load(args[1])
		if err != nil {
			return err
		}

		merged := persona.Merge(base, overlay)
		merged.ID = args[2]

		path, err := st.Save(merged)
		if err != nil {
			return err
		}
		fmt.Printf("Merged %s + %s into %s at %s\n", args[0], args[1], merged.ID, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(mergeCmd)
}
