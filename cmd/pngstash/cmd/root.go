/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pngstash",
	Short: "pngstash - hide messages in PNG files",
	Long: `pngstash hides, extracts, and removes text messages stored in
custom PNG chunks. The message rides in an ancillary chunk that image
viewers ignore, so the file stays a valid PNG.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file")
}

// loadConfig resolves the configuration for a command invocation: the
// --config flag if set, the default path if a file exists there, and the
// built-in defaults otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	if configPath != "" {
		return config.LoadConfig(configPath)
	}

	defaultPath := config.GetDefaultConfigPath()
	if config.ConfigExists(defaultPath) {
		return config.LoadConfig(defaultPath)
	}
	return config.DefaultConfig(), nil
}

// chunkTypeArg picks the chunk type tag: the optional positional argument
// when given, the configured default otherwise.
func chunkTypeArg(cmd *cobra.Command, args []string, pos int) (string, error) {
	if len(args) > pos {
		return args[pos], nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	return cfg.DefaultChunkType, nil
}
