package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/curry_ive_go/playground"
)

// ApplyOptions holds flags for the apply command.
type ApplyOptions struct {
	*RootOptions
	Mode       string
	Memo       uint32
	UseDefault bool
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "apply [fn] [args...]",
		Short: "Apply arguments to a curried function",
		Long: `Apply arguments to a curried function from the catalog.

Stepwise mode calls the function once per argument, f(a)(b)(c). Grouped mode
passes all but the last argument together, then the last one, f(a, b)(c).
An empty argument ("") is left out of a grouped call.

Without a function name, or with --default, every argument goes to the
config's playground.default_function.

Example:
  curryplay apply add3 1 2 3
  curryplay apply log APP warn "Low battery" --mode grouped
  curryplay apply --default 1 2 3`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.UseDefault || len(args) == 0 {
				return applyFunction(opts, cmd, opts.Config().Playground.DefaultFunction, args)
			}
			return applyFunction(opts, cmd, args[0], args[1:])
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "application mode (stepwise|grouped), defaults to the config")
	cmd.Flags().Uint32Var(&opts.Memo, "memo", 0, "memoize results in a table of this size, defaults to the config")
	cmd.Flags().BoolVar(&opts.UseDefault, "default", false, "apply all arguments to the config's default function")

	return cmd
}

type appliedOutcome struct {
	RunID  string     `json:"run_id"`
	Mode   string     `json:"mode"`
	Trace  string     `json:"trace"`
	Groups [][]string `json:"groups"`
	Output string     `json:"output,omitempty"`
	Error  string     `json:"error,omitempty"`
}

func applyFunction(opts *ApplyOptions, cmd *cobra.Command, key string, inputs []string) error {
	ctx := cmd.Context()
	cfg := opts.Config()

	modeName := opts.Mode
	if modeName == "" {
		modeName = cfg.Playground.DefaultMode
	}
	mode, err := playground.ParseMode(modeName)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --mode", err)
	}

	memo := cfg.Playground.MemoSize
	if cmd.Flags().Changed("memo") {
		memo = opts.Memo
	}

	session, err := playground.NewSession(ctx, key, playground.WithMemo(memo))
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot start session", err)
	}
	if err := session.SetInputs(inputs...); err != nil {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("%s takes %d arguments, got %d", key, session.Entry().Arity, len(inputs)), err)
	}

	out, err := session.Run(ctx, mode)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot run", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		res := appliedOutcome{
			RunID:  out.RunID,
			Mode:   string(out.Mode),
			Trace:  out.Trace(),
			Groups: out.Groups,
			Output: out.Output,
		}
		if !out.OK() {
			res.Error = out.Message()
		}
		if err := json.NewEncoder(w).Encode(res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, out.Trace())
		if out.OK() {
			fmt.Fprintf(w, "= %s\n", out.Output)
		}
		if opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "run %s took %s\n", out.RunID, out.Span.Duration())
		}
	}

	if !out.OK() {
		return WrapExitError(ExitFailure, fmt.Sprintf("%s failed", key), out.Err)
	}
	return nil
}
