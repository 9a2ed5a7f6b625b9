package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sona/src/store"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <persona-id>",
	Short: "Export a persona as JSON, Markdown or YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		format, err := store.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		p, err := store.New(settings.PersonasDir).Load(args[0])
		if err != nil {
			return err
		}

		content, err := store.Export(p, format)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Printf("Exported %s to %s\n", p.ID, exportOutput)
			return nil
		}

		fmt.Println(content)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, markdown or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
