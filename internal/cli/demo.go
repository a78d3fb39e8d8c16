package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/curry_ive_go/curry"
	"github.com/on-the-ground/curry_ive_go/demo"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print worked currying examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDemo(cmd)
		},
	}
}

type example struct {
	label  string
	fn     curry.Fn
	groups [][]any
}

func examples() ([]example, error) {
	add3 := curry.FromI3O1(demo.Add3[int])
	mul3 := curry.FromI3O1(demo.Multiply3[int])
	logC := curry.FromI3O1(demo.Log)

	first, err := add3.Apply(1)
	if err != nil {
		return nil, err
	}
	step, _ := first.Next()

	return []example{
		{"curry(add3)(1)(2)(3)", add3, [][]any{{1}, {2}, {3}}},
		{"curry(add3)(1, 2)(3)", add3, [][]any{{1, 2}, {3}}},
		{"curry(add3)(1)(2, 3)", add3, [][]any{{1}, {2, 3}}},
		{"curry(add3)(1, 2, 3)", add3, [][]any{{1, 2, 3}}},
		{"curry(add3)(1, 2, 3, 4)", add3, [][]any{{1, 2, 3, 4}}},
		{"step := curry(add3)(1); step(2)(3)", step, [][]any{{2}, {3}}},
		{"step(5)(6)", step, [][]any{{5}, {6}}},
		{"curry(multiply3)(2)(3)(4)", mul3, [][]any{{2}, {3}, {4}}},
		{"curry(log)('APP')('info')('ready')", logC, [][]any{{"APP"}, {"info"}, {"ready"}}},
		{"curry(log)('APP')('warn')('Low battery')", logC, [][]any{{"APP"}, {"warn"}, {"Low battery"}}},
	}, nil
}

func printDemo(cmd *cobra.Command) error {
	exs, err := examples()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, ex := range exs {
		res, err := ex.fn.ApplyGroups(ex.groups...)
		if err != nil {
			return fmt.Errorf("%s: %w", ex.label, err)
		}
		fmt.Fprintf(w, "%-42s= %v\n", ex.label, res.Value())
	}
	return nil
}
