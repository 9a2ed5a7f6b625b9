package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sona/src/store"
)

var importFormat string

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a persona document and store it",
	Long: `Import a persona from a JSON or YAML file. Imported categories are
re-validated against the allow-list before the persona is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		formatName := importFormat
		if formatName == "" {
			formatName = strings.TrimPrefix(filepath.Ext(args[0]), ".")
		}
		format, err := store.ParseFormat(formatName)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		p, err := store.Import(data, format, settings.Allowlist())
		if err != nil {
			return err
		}

		path, err := store.New(settings.PersonasDir).Save(p)
		if err != nil {
			return err
		}
		fmt.Printf("Imported persona %s at %s\n", p.ID, path)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Import format (default: by file extension)")
	rootCmd.AddCommand(importCmd)
}
