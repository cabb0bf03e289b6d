package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// newShapesCmd creates the shapes command, which lists every figure the
// render and animate commands can build, with its default parameters.
func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the figures aurelia can generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range shapeNames() {
				b := shapeBuilders[name]
				params := make([]string, 0, len(b.defaults))
				for k, v := range b.defaults {
					params = append(params, fmt.Sprintf("%s=%g", k, v))
				}
				sort.Strings(params)
				fmt.Fprintf(out, "%-26s %s\n", name, strings.Join(params, " "))
			}
			return nil
		},
	}
}
