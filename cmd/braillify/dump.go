package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/braillify/dump"
)

func newDumpCmd() *cobra.Command {
	var (
		width      int
		noASCII    bool
		noOffsets  bool
		noCollapse bool
	)

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "print a braille hex dump",
		Long: `Dump streams a file or stdin through a hexdump-style formatter that
renders each byte as one braille cell, with offset and ASCII columns.
Repeated rows are collapsed to a single "*" line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			d, err := dump.New(cmd.OutOrStdout(),
				dump.WithWidth(width),
				dump.WithASCII(!noASCII),
				dump.WithOffsets(!noOffsets),
				dump.WithCollapseRepeats(!noCollapse),
			)
			if err != nil {
				return err
			}

			if _, err := io.Copy(d, r); err != nil {
				return err
			}

			return d.Flush()
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", dump.DefaultWidth, "bytes per row")
	cmd.Flags().BoolVar(&noASCII, "no-ascii", false, "omit the ASCII column")
	cmd.Flags().BoolVar(&noOffsets, "no-offsets", false, "omit the offset column")
	cmd.Flags().BoolVar(&noCollapse, "no-collapse", false, "print repeated rows instead of collapsing them")

	return cmd
}
