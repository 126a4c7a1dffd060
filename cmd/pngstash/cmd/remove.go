package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/pkg/stash"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <file> [type]",
	Short: "Remove a hidden message chunk from a PNG file",
	Long: `Remove the first chunk with the given type from a PNG file and
rewrite the file in place.

The chunk type defaults to the configured default_chunk_type.

Example:
  pngstash remove image.png
  pngstash remove image.png ruSt`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]

		typeName, err := chunkTypeArg(cmd, args, 1)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		if err := stash.Remove(filePath, typeName); err != nil {
			fmt.Printf("Error removing chunk: %v\n", err)
			return
		}

		fmt.Printf("Removed '%s' chunk from %s\n", typeName, filePath)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
