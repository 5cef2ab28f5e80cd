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
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/export"
)

// runOpts holds the command-line flags of the run command. Flags which
// were not given leave the configuration unchanged.
type runOpts struct {
	config      string
	layout      string
	count       int
	budget      int
	weight      int
	width       float64
	lineCap     string
	aggregation string
	seed        int
	maxSize     int
	outDir      string
	pdf         bool
	preview     bool
	labels      bool
	interactive bool
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Compute a thread pattern for an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if opts.config != "" {
				var err error
				cfg, err = LoadConfig(opts.config)
				if err != nil {
					return err
				}
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return err
			}
			return c.run(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, opts.interactive)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	f.StringVar(&opts.layout, "pins", "", "pin layout: circle, rectangle, grid, or a layout file")
	f.IntVarP(&opts.count, "count", "n", 0, "number of pins")
	f.IntVarP(&opts.budget, "budget", "b", 0, "maximal number of pins on the thread path")
	f.IntVar(&opts.weight, "weight", 0, "darkness of one thread, 0-255")
	f.Float64Var(&opts.width, "line-width", 0, "thread width in pixels")
	f.StringVar(&opts.lineCap, "cap", "", "thread end style: butt, round, square")
	f.StringVar(&opts.aggregation, "aggregation", "", "chord score: mean or sum")
	f.IntVar(&opts.seed, "seed", 0, "index of the first pin")
	f.IntVar(&opts.maxSize, "max-size", 0, "scale the image down to at most this many pixels per side")
	f.StringVarP(&opts.outDir, "output", "o", "", "output directory")
	f.BoolVar(&opts.pdf, "pdf", false, "also write a PDF of the thread pattern")
	f.BoolVar(&opts.preview, "preview", false, "also write a high resolution preview")
	f.BoolVar(&opts.labels, "labels", false, "mark the pins in the preview")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "show a progress view")

	return cmd
}

// apply copies the flags which were set on the command line into cfg.
func (o *runOpts) apply(cmd *cobra.Command, cfg *Config) error {
	f := cmd.Flags()
	if f.Changed("pins") {
		switch o.layout {
		case layoutCircle, layoutRectangle, layoutGrid:
			cfg.Pins.Layout = o.layout
		default:
			cfg.Pins.Layout = layoutFile
			cfg.Pins.File = o.layout
		}
	}
	if f.Changed("count") {
		cfg.Pins.Count = o.count
	}
	if f.Changed("budget") {
		cfg.Params.LineBudget = o.budget
	}
	if f.Changed("weight") {
		cfg.Params.LineWeight = o.weight
	}
	if f.Changed("line-width") {
		cfg.Params.LineWidth = o.width
	}
	if f.Changed("cap") {
		cfg.LineCap = o.lineCap
	}
	if f.Changed("aggregation") {
		if err := cfg.Params.Aggregation.UnmarshalText([]byte(o.aggregation)); err != nil {
			return err
		}
	}
	if f.Changed("seed") {
		cfg.Params.SeedPin = o.seed
	}
	if f.Changed("max-size") {
		cfg.MaxSize = o.maxSize
	}
	if f.Changed("output") {
		cfg.Output.Dir = o.outDir
	}
	if f.Changed("pdf") {
		cfg.Output.PDF = o.pdf
	}
	if f.Changed("preview") {
		cfg.Output.Preview = o.preview
	}
	if f.Changed("labels") {
		cfg.Output.PreviewLabels = o.labels
	}
	return nil
}

func (c *CLI) run(ctx context.Context, w io.Writer, imageFile string, cfg *Config, interactive bool) error {
	p, err := cfg.params()
	if err != nil {
		return err
	}

	img, err := loadImage(imageFile, cfg.MaxSize)
	if err != nil {
		return err
	}
	b := img.Bounds()
	c.Logger.Debug("image loaded", "file", imageFile, "width", b.Dx(), "height", b.Dy())

	pins, yUp, err := pinLayout(&cfg.Pins, b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	p.YUp = yUp

	s := stringart.NewSession()
	in := &stringart.Input{Image: img, Pins: pins, Params: p, Run: true}

	prog := newProgress(c.Logger)
	if interactive {
		err = runInteractive(ctx, s, in)
	} else {
		err = runBatches(ctx, s, in)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew %d threads", len(s.Lines())))

	if warn := s.Pins().Warning(); warn != nil {
		printWarning(w, "%s", warn)
	}
	base := strings.TrimSuffix(filepath.Base(imageFile), filepath.Ext(imageFile))
	files, err := writeOutputs(s, &cfg.Output, base)
	if err != nil {
		return err
	}

	printSuccess(w, "%s", styleTitle.Render("String art complete"))
	printKeyValue(w, "pins", styleNumber.Render(fmt.Sprint(s.Pins().Len())))
	printKeyValue(w, "threads", styleNumber.Render(fmt.Sprint(len(s.Lines()))))
	printKeyValue(w, "stopped", s.Reason())
	for _, name := range files {
		printFile(w, name)
	}
	return nil
}

// runBatches drives the session until it is exhausted, one batch per
// call to Solve.
func runBatches(ctx context.Context, s *stringart.Session, in *stringart.Input) error {
	for {
		res, err := s.Solve(ctx, in)
		if err != nil {
			return err
		}
		if res.State == stringart.Exhausted {
			return nil
		}
	}
}

// loadImage decodes an image file. If maxSize is positive and the image is
// larger, it is scaled down to fit into a maxSize×maxSize square.
func loadImage(fileName string, maxSize int) (image.Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	b := img.Bounds()
	if maxSize <= 0 || (b.Dx() <= maxSize && b.Dy() <= maxSize) {
		return img, nil
	}
	scale := float64(maxSize) / float64(max(b.Dx(), b.Dy()))
	w := max(1, int(float64(b.Dx())*scale+0.5))
	h := max(1, int(float64(b.Dy())*scale+0.5))
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// writeOutputs writes the files selected by out and returns their names.
func writeOutputs(s *stringart.Session, out *OutputConfig, base string) ([]string, error) {
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return nil, err
	}

	var files []string
	create := func(suffix string, write func(io.Writer) error) error {
		name := filepath.Join(out.Dir, base+suffix)
		if err := writeFile(name, write); err != nil {
			return err
		}
		files = append(files, name)
		return nil
	}

	var errs []error
	if out.JSON {
		errs = append(errs, create(".json", func(w io.Writer) error {
			return export.WriteJSON(w, s)
		}))
	}
	if out.PNG {
		errs = append(errs, create("-threads.png", func(w io.Writer) error {
			return export.WriteOutputPNG(w, s)
		}))
	}
	if out.Preview {
		errs = append(errs, create("-preview.png", func(w io.Writer) error {
			return export.WritePreviewPNG(w, s, &export.PreviewOptions{
				Scale:     out.PreviewScale,
				PinLabels: out.PreviewLabels,
			})
		}))
	}
	if out.PDF {
		name := filepath.Join(out.Dir, base+".pdf")
		if err := export.WritePDF(name, s, nil); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		} else {
			files = append(files, name)
		}
	}
	return files, errors.Join(errs...)
}
