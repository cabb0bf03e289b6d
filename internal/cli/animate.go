package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkale/aurelia/pkg/anim"
	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/render"
)

// newAnimateCmd creates the animate command, which sweeps one generator
// parameter across a range and writes each frame as a numbered PNG.
func newAnimateCmd() *cobra.Command {
	opts := renderOpts{}
	var (
		param  string
		start  float64
		end    float64
		frames int
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "animate [shape]",
		Short: "Render a parameter sweep as a PNG frame sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			name := args[0]

			if param == "" {
				return fmt.Errorf("--param is required")
			}
			b, ok := shapeBuilders[name]
			if !ok {
				return &geom.UnsupportedShapeError{Name: name}
			}
			overrides, err := parseParamFlags(opts.params)
			if err != nil {
				return err
			}
			style, err := resolveStyle(opts.styleFile, opts.scheme)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			static := mergeParams(b.defaults, overrides)
			gen := func(p anim.Params) (*compose.Composition, error) {
				return b.build(p)
			}
			proj := opts.projection()

			p := newProgress(logger)
			err = anim.Animate(cmd.Context(), gen, static, param, start, end, frames,
				func(frame int, value float64, c *compose.Composition) error {
					path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", frame))
					logger.Debug("writing frame", "frame", frame, param, value, "path", path)
					return render.SavePNG(path, c, style, proj, opts.width, opts.height)
				})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Wrote %d frames to %s", frames, outDir))
			return nil
		},
	}

	opts.registerView(cmd)
	cmd.Flags().StringArrayVar(&opts.params, "set", nil, "override a generator parameter (key=value, repeatable)")
	cmd.Flags().StringVar(&param, "param", "", "name of the parameter to sweep")
	cmd.Flags().Float64Var(&start, "start", 0, "first value of the sweep")
	cmd.Flags().Float64Var(&end, "end", 1, "last value of the sweep")
	cmd.Flags().IntVar(&frames, "frames", 30, "number of frames")
	cmd.Flags().StringVar(&outDir, "output-dir", "frames", "directory for the frame sequence")
	return cmd
}
