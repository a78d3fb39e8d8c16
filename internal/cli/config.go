package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/curry_ive_go/config"
)

// ConfigOptions holds flags for the config commands.
type ConfigOptions struct {
	*RootOptions
	Force bool
}

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the curryplay config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts, cmd)
		},
	}
	initCmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config, after env overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(opts, cmd)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func initConfig(opts *ConfigOptions, cmd *cobra.Command) error {
	path := opts.ConfigPath
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("%s already exists, use --force to overwrite", path))
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return WrapExitError(ExitFailure, "cannot write config", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func showConfig(opts *ConfigOptions, cmd *cobra.Command) error {
	data, err := yaml.Marshal(opts.Config())
	if err != nil {
		return WrapExitError(ExitFailure, "cannot encode config", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
