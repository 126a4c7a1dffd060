package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file if none exists.

The configuration carries the default chunk type used when a command is
invoked without an explicit tag.

Example:
  pngstash init
  pngstash init --config ./pngstash.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg, err := config.BootstrapConfig(configPath)
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		fmt.Printf("Config at %s\n", configPath)
		fmt.Printf("Default chunk type: %s\n", cfg.DefaultChunkType)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
