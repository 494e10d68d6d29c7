package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DimitriosDimakos/libcerializer/pkg/config"
	"github.com/DimitriosDimakos/libcerializer/pkg/logging"
)

// cfg holds the loaded configuration for all subcommands.
var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cerializer",
	Short: "cerializer - dynamic message toolbox",
	Long: `cerializer inspects, verifies, archives and generates typed wrappers
for serialized dynamic messages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		logging.SetLevel(parseLevel(cfg.Logging.Level))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseLevel(level string) logging.Level {
	switch level {
	case "off":
		return logging.OffLevel
	case "debug":
		return logging.DebugLevel
	case "warn", "warning":
		return logging.WarningLevel
	case "error":
		return logging.ErrorLevel
	default:
		return logging.InfoLevel
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (off, debug, info, warn, error)")
}
