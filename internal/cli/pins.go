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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/stringart/export"
	"seehuhn.de/go/stringart/testcases"
)

type pinsOpts struct {
	config  string
	layout  string
	count   int
	margin  float64
	width   int
	height  int
	maxSize int
	yUp     bool
	output  string
}

func (c *CLI) pinsCommand() *cobra.Command {
	var opts pinsOpts

	cmd := &cobra.Command{
		Use:   "pins [image]",
		Short: "Write a pin layout as JSON",
		Long: `Pins writes the pins of a generated layout to a JSON file, which can be
edited and passed to "stringart run --pins". The image size is taken from
the image, if given, and from --width and --height otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if opts.config != "" {
				var err error
				cfg, err = LoadConfig(opts.config)
				if err != nil {
					return err
				}
			}
			f := cmd.Flags()
			if f.Changed("layout") {
				cfg.Pins.Layout = opts.layout
			}
			if f.Changed("count") {
				cfg.Pins.Count = opts.count
			}
			if f.Changed("margin") {
				cfg.Pins.Margin = opts.margin
			}
			if f.Changed("max-size") {
				cfg.MaxSize = opts.maxSize
			}

			width, height := opts.width, opts.height
			if len(args) == 1 {
				img, err := loadImage(args[0], cfg.MaxSize)
				if err != nil {
					return err
				}
				width, height = img.Bounds().Dx(), img.Bounds().Dy()
			}
			if width < 1 || height < 1 {
				return fmt.Errorf("invalid image size %dx%d", width, height)
			}
			if cfg.Pins.Layout == layoutFile {
				return fmt.Errorf("pins: layout must be %s, %s or %s", layoutCircle, layoutRectangle, layoutGrid)
			}

			pins, _, err := pinLayout(&cfg.Pins, width, height)
			if err != nil {
				return err
			}
			l := export.NewLayout(width, height, pins)
			if opts.yUp {
				l = export.NewLayout(width, height, testcases.FlipY(pins, height))
				l.YUp = true
			}

			if opts.output == "" || opts.output == "-" {
				return export.WriteLayout(cmd.OutOrStdout(), l)
			}
			if err := writeFile(opts.output, func(w io.Writer) error {
				return export.WriteLayout(w, l)
			}); err != nil {
				return err
			}
			c.Logger.Info("pin layout written", "file", opts.output, "pins", len(pins))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	f.StringVar(&opts.layout, "layout", "", "pin layout: circle, rectangle or grid")
	f.IntVarP(&opts.count, "count", "n", 0, "number of pins")
	f.Float64Var(&opts.margin, "margin", 0, "distance of the pins from the image border")
	f.IntVar(&opts.width, "width", 0, "image width, if no image is given")
	f.IntVar(&opts.height, "height", 0, "image height, if no image is given")
	f.IntVar(&opts.maxSize, "max-size", 0, "size limit applied to the image, as for run")
	f.BoolVar(&opts.yUp, "y-up", false, "write coordinates with the origin at the bottom-left")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeFile creates fileName and fills it using write.
func writeFile(fileName string, write func(io.Writer) error) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}
