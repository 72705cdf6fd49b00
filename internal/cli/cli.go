// Package cli implements the simplexgrid command-line interface.
//
// The CLI is a thin text formatter over the four core operations of the
// simplex package: counting, enumeration, ranking, and unranking. It holds
// no logic of its own beyond argument parsing and printing.
//
// # Commands
//
//   - count M N — print the number of m-part compositions of n
//   - grid M N  — print the grid points, one per line, in lexicographic order
//   - rank M N X0,X1,... — print the 0-based rank of a point
//   - at M N RANK — print the point at a given rank
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log; diagnostics go to stderr, results to stdout.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// CLI wires the command tree to its output streams. Results are printed to
// out; the logger writes diagnostics to the error stream.
type CLI struct {
	out    io.Writer
	logger *log.Logger
}

// New returns a CLI printing results to out and diagnostics to errOut.
// The logger starts at info level; --verbose lowers it to debug.
func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out: out,
		logger: log.NewWithOptions(errOut, log.Options{
			Level: log.InfoLevel,
		}),
	}
}

// RootCommand builds the full cobra command tree.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "simplexgrid",
		Short: "Enumerate, rank and unrank simplex lattice points",
		Long: "simplexgrid lists the integer points of the (m-1)-dimensional simplex\n" +
			"{x : x_0 + ... + x_{m-1} = n} — the m-part compositions of n — in\n" +
			"lexicographic order, and converts between points and their ranks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		c.countCommand(),
		c.gridCommand(),
		c.rankCommand(),
		c.atCommand(),
	)

	return root
}
