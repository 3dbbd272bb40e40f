package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/braillify/anim"
)

func newPlayCmd() *cobra.Command {
	var (
		interval time.Duration
		cycles   int
		blur     bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "run a looping braille spinner animation",
		Long: `Play walks a single dot through a braille cell on the current terminal
line. With --blur each frame is blended with the previous one by taking the
dot union, giving a motion-blur trail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			frames := anim.Spinner()
			out := cmd.OutOrStdout()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			prev := frames[len(frames)-1]
			for i := 0; cycles == 0 || i < cycles; i++ {
				for _, frame := range frames {
					display := frame
					if blur {
						blended, err := anim.Blend(prev, frame)
						if err != nil {
							return err
						}
						display = blended
					}
					fmt.Fprintf(out, "\r%s", display)
					prev = frame
					<-ticker.C
				}
			}
			fmt.Fprintln(out)

			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 100*time.Millisecond, "delay between frames")
	cmd.Flags().IntVarP(&cycles, "cycles", "n", 0, "cycles to run before exiting (0 = run forever)")
	cmd.Flags().BoolVarP(&blur, "blur", "b", false, "blend consecutive frames for a motion-blur trail")

	return cmd
}
