package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkale/aurelia/pkg/anim"
	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/render"
)

const (
	formatPNG     = "png"
	formatSVG     = "svg"
	defaultWidth  = 1024
	defaultHeight = 1024
)

// renderOpts holds the command-line flags shared by render and eval.
type renderOpts struct {
	output    string   // output file path
	format    string   // "png" or "svg"; empty infers from the output extension
	width     int      // canvas width in pixels
	height    int      // canvas height in pixels
	styleFile string   // TOML scheme file
	scheme    string   // scheme name within the style file
	azimuth   float64  // projection azimuth in degrees
	elevation float64  // projection elevation in degrees
	params    []string // key=value generator parameter overrides
}

// registerView adds the flags every rendering command shares.
func (o *renderOpts) registerView(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.width, "width", defaultWidth, "canvas width in pixels")
	cmd.Flags().IntVar(&o.height, "height", defaultHeight, "canvas height in pixels")
	cmd.Flags().StringVar(&o.styleFile, "styles", "", "TOML style scheme file")
	cmd.Flags().StringVar(&o.scheme, "scheme", "", "style scheme name")
	cmd.Flags().Float64Var(&o.azimuth, "azimuth", 45, "view azimuth in degrees")
	cmd.Flags().Float64Var(&o.elevation, "elevation", 30, "view elevation in degrees")
}

// registerOutput adds the single-file output flags.
func (o *renderOpts) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: png (default), svg")
}

// resolveFormat picks the output format from the flag or the file
// extension, defaulting to PNG.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".svg":
			return formatSVG, nil
		default:
			return formatPNG, nil
		}
	}
	switch format {
	case formatPNG, formatSVG:
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q, expected png or svg", format)
}

// resolveStyle loads the scheme file when one is given and picks the
// requested scheme, defaulting to the built-in style.
func resolveStyle(styleFile, scheme string) (render.Style, error) {
	if styleFile == "" {
		if scheme != "" {
			return render.Style{}, fmt.Errorf("--scheme requires --styles")
		}
		return render.DefaultStyle(), nil
	}
	schemes, err := render.LoadSchemes(styleFile)
	if err != nil {
		return render.Style{}, err
	}
	return render.Scheme(schemes, scheme)
}

func (o *renderOpts) projection() render.Projection {
	return render.Projection{
		Azimuth:   o.azimuth * geom.DegToRad,
		Elevation: o.elevation * geom.DegToRad,
	}
}

// parseParamFlags parses repeated --set key=value flags into a parameter
// map.
func parseParamFlags(pairs []string) (anim.Params, error) {
	params := make(anim.Params, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", key, err)
		}
		params[key] = f
	}
	return params, nil
}

// save renders c to o.output in the resolved format and style.
func save(o *renderOpts, c *compose.Composition) error {
	format, err := resolveFormat(o.format, o.output)
	if err != nil {
		return err
	}
	style, err := resolveStyle(o.styleFile, o.scheme)
	if err != nil {
		return err
	}
	if format == formatSVG {
		return render.SaveSVG(o.output, c, style, o.projection(), o.width, o.height)
	}
	return render.SavePNG(o.output, c, style, o.projection(), o.width, o.height)
}

// newRenderCmd creates the render command for generating a single figure.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [shape]",
		Short: "Render a figure to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			name := args[0]
			if opts.output == "" {
				opts.output = name + ".png"
			}

			overrides, err := parseParamFlags(opts.params)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			c, err := buildShape(name, overrides)
			if err != nil {
				return err
			}
			logger.Debug("generated figure", "shape", name, "elements", c.Count())

			if err := save(&opts, c); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Rendered %s to %s", name, opts.output))
			return nil
		},
	}

	opts.registerView(cmd)
	opts.registerOutput(cmd)
	cmd.Flags().StringArrayVar(&opts.params, "set", nil, "override a generator parameter (key=value, repeatable)")
	return cmd
}
