package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sona/src/config"
)

var (
	cfgFile     string
	personasDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sona",
	Short: "Build personas and render them into system prompts",
	Long: `sona manages persona documents - identities described through named
trait categories - and renders them into natural-language system prompts
for driving a language model, optionally filtered by situational context.

Personas are stored as one JSON file per persona id. Trait content is
free-form; only category names are validated.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/sona/config.toml)")
	rootCmd.PersistentFlags().StringVar(&personasDir, "personas-dir", "", "directory holding persona documents")

	viper.BindPFlag("personas_dir", rootCmd.PersistentFlags().Lookup("personas-dir"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.ConfigDir())
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SONA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine; defaults apply
	_ = viper.ReadInConfig()
}

// engineSettings loads the settings file and applies flag/env overrides
func engineSettings() (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir := viper.GetString("personas_dir"); dir != "" {
		settings.PersonasDir = dir
	}
	if db := viper.GetString("history_db"); db != "" {
		settings.HistoryDB = db
	}
	return settings, nil
}
