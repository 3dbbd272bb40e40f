package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/braillify"
	"github.com/arloliu/braillify/compress"
)

func newEncodeCmd() *cobra.Command {
	var compressType string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "encode binary data to braille text",
		Long: `Encode reads binary data from a file or stdin and writes one braille
cell per byte. With --compress the payload is compressed before encoding,
which usually more than offsets the 3x UTF-8 cost of braille text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			codec, err := compress.Get(compress.Type(compressType))
			if err != nil {
				return err
			}
			payload, err := codec.Compress(data)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), braillify.Encode(payload))

			return nil
		},
	}

	cmd.Flags().StringVarP(&compressType, "compress", "c", "none",
		"compress payload before encoding (none|zstd|s2|lz4)")

	return cmd
}
