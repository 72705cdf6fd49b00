package cli

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplexgrid/simplex"
)

// countCommand prints the total number of grid points, C(n+m-1, m-1).
func (c *CLI) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count M N",
		Short: "Print the number of m-part compositions of n",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, n, err := parseParams(args[0], args[1])
			if err != nil {
				return err
			}
			size, err := simplex.NumCompositions(m, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, size.String())

			return nil
		},
	}
}

// gridCommand streams the grid points one per line. It uses the lazy
// generator, so grids too large to materialize can still be printed (or
// truncated with --limit).
func (c *CLI) gridCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "grid M N",
		Short: "Print the grid points in lexicographic order, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, n, err := parseParams(args[0], args[1])
			if err != nil {
				return err
			}
			size, err := simplex.NumCompositions(m, n)
			if err != nil {
				return err
			}
			c.logger.Debugf("grid m=%d n=%d holds %s points", m, n, size)

			gen, err := simplex.NewGenerator(m, n)
			if err != nil {
				return err
			}
			for i := 0; limit <= 0 || i < limit; i++ {
				x, err := gen.Next()
				if errors.Is(err, simplex.ErrExhausted) {
					break
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, formatPoint(x))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many points (0 = all)")

	return cmd
}

// rankCommand prints the 0-based lexicographic rank of a point.
func (c *CLI) rankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rank M N X0,X1,...",
		Short: "Print the 0-based lexicographic rank of a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			m, n, err := parseParams(args[0], args[1])
			if err != nil {
				return err
			}
			x, err := parsePoint(args[2])
			if err != nil {
				return err
			}
			idx, err := simplex.Rank(x, m, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, idx.String())

			return nil
		},
	}
}

// atCommand prints the point at a given rank. It unranks in closed form,
// so ranks far beyond any walkable position still resolve instantly.
func (c *CLI) atCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "at M N RANK",
		Short: "Print the point at a given 0-based rank",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			m, n, err := parseParams(args[0], args[1])
			if err != nil {
				return err
			}
			r, ok := new(big.Int).SetString(args[2], 10)
			if !ok {
				return fmt.Errorf("parse rank %q: not a decimal integer", args[2])
			}
			x, err := simplex.Unrank(r, m, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, formatPoint(x))

			return nil
		},
	}
}
