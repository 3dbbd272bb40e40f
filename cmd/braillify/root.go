package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "braillify",
		Short: "visualize binary data as braille characters",
		Long: `Braillify maps every byte of input to one braille cell, arranged so the
cell reads as a bar graph of the byte's bits, and maps the cells back to
the original bytes.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newDumpCmd(),
		newPlayCmd(),
	)

	return cmd
}

// readInput returns the contents of the file named by args[0], or of the
// command's input stream when no file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(args[0])
}
