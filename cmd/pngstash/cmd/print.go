package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/pkg/stash"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "List the chunks of a PNG file",
	Long: `List the type tags of every chunk in a PNG file, in order.

Example:
  pngstash print image.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]

		names, err := stash.List(filePath)
		if err != nil {
			fmt.Printf("Error reading chunks: %v\n", err)
			return
		}

		fmt.Printf("%s: %d chunks\n", filePath, len(names))
		for i, name := range names {
			fmt.Printf("  %d: %s\n", i, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
