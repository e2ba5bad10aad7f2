// Package cli implements the gridcut command-line interface.
//
// # Commands
//
//   - solve: minimize the energy of a TOML problem file with alpha-expansion
//   - generate: write a synthetic noisy problem file
//   - topology: print the neighbor directions and edge count of a grid
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which adds
// one record per expansion cycle.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is injected at build time with -ldflags.
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridcut",
		Short:        "gridcut labels regular grids by alpha-expansion",
		Long:         `gridcut minimizes multi-label energies (data + pairwise smoothness) on 2D and 3D grids by repeated alpha-expansion moves, each solved as a minimum s-t cut.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.topologyCommand())

	return root
}
