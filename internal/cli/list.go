package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/curry_ive_go/demo"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the functions available to curry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listFunctions(rootOpts, cmd)
		},
	}
}

type listedFunction struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Arity        int      `json:"arity"`
	Kind         string   `json:"kind"`
	Placeholders []string `json:"placeholders"`
}

func listFunctions(opts *RootOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	entries := demo.Catalog()

	if opts.Format == "json" {
		listed := make([]listedFunction, len(entries))
		for i, e := range entries {
			listed[i] = listedFunction{
				Key:          e.Key,
				Label:        e.Label,
				Arity:        e.Arity,
				Kind:         e.Kind.String(),
				Placeholders: e.Placeholders,
			}
		}
		return json.NewEncoder(w).Encode(listed)
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-10s arity %d  %-28s %s\n",
			e.Key, e.Arity, e.Label, strings.Join(e.Placeholders, ", "))
	}
	return nil
}
