package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"sona/src/composer"
	"sona/src/database"
	"sona/src/store"
)

var generateContext string

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <persona-id>",
	Short: "Render a persona into a system prompt",
	Long: `Render a stored persona into a system prompt. With --context, only the
trait categories mapped to that context are included; an unknown context
includes everything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		p, err := store.New(settings.PersonasDir).Load(args[0])
		if err != nil {
			return err
		}

		prompt := composer.New(settings.ContextMap()).SystemPrompt(p, generateContext)

		// Log the render; generation already succeeded, so failures here
		// only cost the history entry
		if history, err := database.NewHistoryDB(settings.HistoryDB); err == nil {
			if err := history.Record(p.ID, generateContext, prompt); err != nil {
				log.Printf("Warning: failed to record render: %v", err)
			}
			history.Close()
		}

		fmt.Println(prompt)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateContext, "context", "c", "", "Situational context (professional, teaching, social, ...)")
	rootCmd.AddCommand(generateCmd)
}
