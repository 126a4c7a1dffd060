package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/pkg/stash"
)

var encodeOutput string

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <file> <message> [type]",
	Short: "Hide a message in a PNG file",
	Long: `Hide a text message in a PNG file as an extra chunk.

The chunk type defaults to the configured default_chunk_type; pass a
4-character tag to override it. Without --output the file is rewritten
in place.

Example:
  pngstash encode image.png "meet me at dawn"
  pngstash encode image.png "meet me at dawn" ruSt --output hidden.png`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		message := args[1]

		typeName, err := chunkTypeArg(cmd, args, 2)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		if err := stash.Encode(filePath, typeName, message, encodeOutput); err != nil {
			fmt.Printf("Error encoding message: %v\n", err)
			return
		}

		out := encodeOutput
		if out == "" {
			out = filePath
		}
		fmt.Printf("Hid %d-byte message in '%s' chunk of %s\n", len(message), typeName, out)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write the result to this path instead of in place")
}
