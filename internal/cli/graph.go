package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) graphCommand() *cobra.Command {
	var flags correctionFlags
	cmd := &cobra.Command{
		Use:   "graph <embedding.csv>",
		Short: "Write the correction graph as a CSV edge list",
		Long:  `Write the kNN (+MST) or tree graph used for correction as CSV: from,to,weight.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)

			corr, err := c.corrector(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			g, err := corr.Graph(ctx)
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			bw := bufio.NewWriter(w)
			fmt.Fprintln(bw, "from,to,weight")
			for _, e := range g.Edges() {
				fmt.Fprintf(bw, "%d,%d,%s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
			}
			if err = bw.Flush(); err != nil {
				closeOut()
				return err
			}
			if err = closeOut(); err != nil {
				return err
			}
			c.Logger.Info("graph written", "vertices", g.VertexCount(), "edges", g.EdgeCount(),
				"components", len(g.ConnectedComponents()), "weight", g.TotalWeight())

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
