// seehuhn.de/go/stringart - thread patterns from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli implements the stringart command-line interface.
//
// # Commands
//
//   - run: compute a thread pattern for an image and write the results
//   - pins: write a pin layout as JSON, for editing or for use with run
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one record per committed thread.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/stringart"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance which logs to w.
// The logger also receives the records of the stringart library.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	stringart.SetLogger(slog.New(logger))
	return &CLI{Logger: logger}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "stringart",
		Short:        "Stringart turns images into thread patterns",
		Long:         `Stringart approximates a grayscale image by straight threads spanned between pins, choosing each thread greedily to cover the darkest remaining chord.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.runCommand())
	root.AddCommand(c.pinsCommand())

	return root
}
