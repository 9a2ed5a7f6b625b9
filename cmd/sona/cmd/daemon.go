package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sona/src/daemon"
)

// daemonCmd runs the JSON-RPC daemon in the foreground
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the persona JSON-RPC daemon",
	Long: `Run the JSON-RPC 2.0 daemon on a unix domain socket. Every method is a
thin dispatch onto the same store, validator and composer the CLI uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := engineSettings()
		if err != nil {
			return err
		}

		server, err := daemon.NewServer(settings)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			fmt.Printf("Received %s, shutting down\n", sig)
			return server.Stop()
		}
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}
