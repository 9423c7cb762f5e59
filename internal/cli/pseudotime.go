package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) pseudotimeCommand() *cobra.Command {
	var (
		flags correctionFlags
		start int
	)
	cmd := &cobra.Command{
		Use:   "pseudotime <embedding.csv>",
		Short: "Assign signed pseudo-time relative to a start sample",
		Long: `Assign every sample its distance from the start sample along the minimum
spanning tree, negated for samples whose tree path reaches the start through
the minority branch. The kNN settings do not apply. Output is CSV: index,pseudotime.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			prog := newProgress(c.Logger)

			corr, err := c.corrector(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			split, err := corr.Branches(ctx, start)
			if err != nil {
				return err
			}
			if split.HasLeft {
				c.Logger.Info("branches", "start", start, "junctions", split.Junctions, "negated", split.Left)
			} else {
				c.Logger.Info("no branch at start", "start", start, "junctions", split.Junctions)
			}
			pt, err := corr.PseudoTime(ctx, start)
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			bw := bufio.NewWriter(w)
			fmt.Fprintln(bw, "index,pseudotime")
			for i, v := range pt {
				fmt.Fprintf(bw, "%d,%s\n", i, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err = bw.Flush(); err != nil {
				closeOut()
				return err
			}
			if err = closeOut(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Assigned pseudo-time to %d samples", len(pt)))

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&start, "start", "s", 0, "index of the start sample")

	return cmd
}
