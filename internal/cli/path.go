package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) pathCommand() *cobra.Command {
	var (
		flags    correctionFlags
		from, to int
		onTree   bool
	)
	cmd := &cobra.Command{
		Use:   "path <embedding.csv>",
		Short: "Print the corrected shortest path between two samples",
		Long: `Print the vertex sequence of the corrected shortest path from --from to --to,
followed by its length. With --on-tree the path runs along the minimum spanning
tree used for pseudo-time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOrBackground(cmd)

			corr, err := c.corrector(cmd, &flags, args[0])
			if err != nil {
				return err
			}
			path, length, err := corr.Path(ctx, from, to, onTree)
			if err != nil {
				return err
			}
			if path == nil {
				return fmt.Errorf("sample %d is unreachable from sample %d", to, from)
			}

			w, closeOut, err := openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			hops := make([]string, len(path))
			for i, v := range path {
				hops[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(w, strings.Join(hops, " "))
			fmt.Fprintln(w, strconv.FormatFloat(length, 'g', -1, 64))
			if err = closeOut(); err != nil {
				return err
			}
			c.Logger.Info("path", "from", from, "to", to, "hops", len(path)-1, "length", length)

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "source sample")
	cmd.Flags().IntVar(&to, "to", 0, "target sample")
	cmd.Flags().BoolVar(&onTree, "on-tree", false, "follow the minimum spanning tree")

	return cmd
}
