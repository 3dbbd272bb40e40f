package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/braillify"
	"github.com/arloliu/braillify/compress"
)

func newDecodeCmd() *cobra.Command {
	var compressType string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "decode braille text back to binary data",
		Long: `Decode reads braille text from a file or stdin and writes the original
bytes to stdout. Any character outside the braille pattern block fails the
whole call. Use the same --compress value the text was encoded with.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			// encode ends its output with a newline; strip one so that
			// encode | decode round-trips.
			input := strings.TrimSuffix(strings.TrimSuffix(string(text), "\n"), "\r")

			payload, err := braillify.Decode(input)
			if err != nil {
				return err
			}

			codec, err := compress.Get(compress.Type(compressType))
			if err != nil {
				return err
			}
			data, err := codec.Decompress(payload)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&compressType, "compress", "c", "none",
		"decompress payload after decoding (none|zstd|s2|lz4)")

	return cmd
}
