package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellslam/matrix"
)

func (c *CLI) distancesCommand() *cobra.Command {
	var (
		flags correctionFlags
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "distances <embedding.csv>",
		Short: "Write the corrected distance matrix as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)
			prog := newProgress(c.Logger)

			corr, err := c.corrector(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			var d *matrix.Dense
			if raw {
				if d, err = corr.Distances(ctx); err != nil {
					return err
				}
			} else {
				r, err := corr.Corrected(ctx)
				if err != nil {
					return err
				}
				d = r.Distances
			}

			w, closeOut, err := openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			if err = writeMatrix(w, d); err != nil {
				closeOut()
				return err
			}
			if err = closeOut(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Wrote %dx%d distances", d.Rows(), d.Cols()))

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "write embedding distances before correction")

	return cmd
}

// writeMatrix writes one CSV row per matrix row; +Inf is written as "+Inf".
func writeMatrix(w io.Writer, d *matrix.Dense) error {
	bw := bufio.NewWriter(w)
	cells := make([]string, d.Cols())
	for i := 0; i < d.Rows(); i++ {
		row, err := d.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		bw.WriteString(strings.Join(cells, ","))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
