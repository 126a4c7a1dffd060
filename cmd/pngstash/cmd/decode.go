package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/pkg/stash"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <file> [type]",
	Short: "Extract a hidden message from a PNG file",
	Long: `Extract the text message hidden in a PNG file's chunk.

The chunk type defaults to the configured default_chunk_type.

Example:
  pngstash decode image.png
  pngstash decode image.png ruSt`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]

		typeName, err := chunkTypeArg(cmd, args, 1)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		message, err := stash.Decode(filePath, typeName)
		if err != nil {
			fmt.Printf("Error decoding message: %v\n", err)
			return
		}

		fmt.Printf("%s\n", message)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
