package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkale/aurelia/pkg/engine"
)

// newEvalCmd creates the eval command, which runs a Lisp script through
// the DSL engine and renders whatever it emits.
func newEvalCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "eval [script]",
		Short: "Evaluate a Lisp script and render the emitted geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			script := args[0]
			if opts.output == "" {
				opts.output = strings.TrimSuffix(script, ".lisp") + ".png"
			}

			source, err := os.ReadFile(script)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			c, evalErrs, err := engine.NewEngine().Evaluate(string(source))
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					logger.Error("eval error", "script", script, "error", e.Error())
				}
				return fmt.Errorf("%s: %d evaluation error(s)", script, len(evalErrs))
			}
			if c.IsEmpty() {
				logger.Warn("script emitted no geometry; did it call (emit ...)?", "script", script)
			}
			logger.Debug("evaluated script", "script", script, "elements", c.Count())

			if err := save(&opts, c); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Rendered %s to %s", script, opts.output))
			return nil
		},
	}

	opts.registerView(cmd)
	opts.registerOutput(cmd)
	return cmd
}
