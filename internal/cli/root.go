package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/curry_ive_go/config"
	"github.com/on-the-ground/curry_ive_go/log"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
	Format     string // "json" | "text"

	cfg         *config.Config
	endOfLogger func()
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config is the configuration loaded for the running command.
func (o *RootOptions) Config() *config.Config {
	if o.cfg == nil {
		return config.DefaultConfig()
	}
	return o.cfg
}

// Execute runs the curryplay command tree. The logger is flushed however
// the command ends.
func Execute() error {
	cmd, opts := newRootCommand()
	return opts.execute(cmd)
}

// NewRootCommand creates the root command for the curryplay CLI.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *RootOptions) {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "curryplay",
		Short: "curryplay - apply curried functions interactively",
		Long: `Apply curried demo functions one argument at a time, f(a)(b)(c),
or in groups, f(a, b)(c), and see how the arguments accumulate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides the config")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output, same as --log-level=debug")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewApplyCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd, opts
}

// execute runs cmd, then tears the logger down even when cmd failed.
func (o *RootOptions) execute(cmd *cobra.Command) error {
	defer o.teardown()
	return cmd.Execute()
}

func (o *RootOptions) teardown() {
	if o.endOfLogger != nil {
		o.endOfLogger()
		o.endOfLogger = nil
	}
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.Verbose {
		cfg.Logging.Level = string(log.LogDebug)
	}

	logger, err := log.New(log.LogLevel(cfg.Logging.Level), cfg.Logging.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build logger", err)
	}
	ctx, endOfLogger := log.WithZapLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	o.cfg = cfg
	o.endOfLogger = func() { endOfLogger() }
	return nil
}
